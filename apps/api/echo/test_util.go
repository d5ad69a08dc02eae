package echoapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/charityevents/core"
	"github.com/trezcool/charityevents/core/category"
	"github.com/trezcool/charityevents/core/contact"
	"github.com/trezcool/charityevents/core/event"
	emailsvc "github.com/trezcool/charityevents/services/email"
	logsvc "github.com/trezcool/charityevents/services/logger"
	dummydb "github.com/trezcool/charityevents/storage/database/dummy"
)

type (
	eventSeeder interface {
		event.Repository
		CreateEvent(evt event.EventDetail) event.EventDetail
	}

	categorySeeder interface {
		category.Repository
		CreateCategory(cat category.Category) category.Category
	}
)

var (
	evtRepo eventSeeder
	catRepo categorySeeder
)

func testConfig() *core.Config {
	return &core.Config{
		Debug:            true,
		TestMode:         true,
		Env:              "TEST",
		AppName:          "CharityEvents",
		DefaultFromName:  "CharityEvents",
		DefaultFromAddr:  "noreply@localhost",
		ContactInboxAddr: "contact@localhost",
		Server:           core.ServerConfig{Host: "localhost", Port: "8000"},
	}
}

func testLogger(conf *core.Config) core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	logger.Enable(false)
	return logger
}

func setup(t *testing.T) Server {
	// set up DB & repos
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	evtRepo = dummydb.NewEventRepository(db)
	catRepo = dummydb.NewCategoryRepository(db)

	// set up services
	conf := testConfig()
	emailsvc.SentMessages = emailsvc.SentMessages[:0]
	mailSvc := emailsvc.NewConsoleServiceMock(conf)

	validate, translator := core.NewValidator()
	event.RegisterValidators(validate, translator)

	// set up server
	return NewServer(
		&Options{
			DisableReqLogs: true,
			Conf:           conf,
			Logger:         testLogger(conf),
			Validate:       validate,
			Translator:     translator,
			EventSvc:       event.NewService(evtRepo),
			CategorySvc:    category.NewService(catRepo),
			ContactSvc:     contact.NewService(conf, mailSvc),
		},
	)
}

func createEvent(
	t *testing.T,
	name string,
	statusID int,
	startsAt time.Time,
	mutators ...func(evt *event.EventDetail),
) event.EventDetail {
	t.Helper()

	evt := event.EventDetail{
		Event: event.Event{
			Name:     name,
			StatusID: statusID,
			StartsAt: startsAt,
			EndsAt:   startsAt.Add(4 * time.Hour),
			Location: "Sydney CBD",
		},
	}
	for _, mutate := range mutators {
		mutate(&evt)
	}
	return evtRepo.CreateEvent(evt)
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
	extra    interface{}
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
