package category

import "github.com/volatiletech/null/v8"

type Category struct {
	ID        int         `db:"id" json:"id"`
	Name      string      `db:"name" json:"name"`
	IconClass null.String `db:"icon_class" json:"icon_class"`
}
