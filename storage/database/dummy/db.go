package dummydb

import (
	"sync"

	"github.com/trezcool/charityevents/core/category"
	"github.com/trezcool/charityevents/core/event"
)

type (
	DB struct {
		event    *eventTable
		category *categoryTable
	}

	eventTable struct {
		sync.RWMutex
		table map[int]*event.EventDetail
	}

	categoryTable struct {
		sync.RWMutex
		table map[int]*category.Category
	}
)

func Open() (*DB, error) {
	db := &DB{
		event:    &eventTable{table: make(map[int]*event.EventDetail)},
		category: &categoryTable{table: make(map[int]*category.Category)},
	}
	return db, nil
}
