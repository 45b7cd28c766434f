package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/task-manager/internal/model"
	"github.com/iliyamo/task-manager/internal/repository"
)

type fakeTasks struct {
	mu     sync.Mutex
	nextID uint64
	tasks  map[uint64]model.Task
}

func newFakeTasks() *fakeTasks { return &fakeTasks{tasks: map[uint64]model.Task{}} }

func (f *fakeTasks) List(context.Context) ([]model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Task{}
	for i := uint64(1); i <= f.nextID; i++ {
		if t, ok := f.tasks[i]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTasks) Get(_ context.Context, id uint64) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (f *fakeTasks) Create(_ context.Context, title, description string, completed bool) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t := model.Task{ID: f.nextID, Title: title, Description: description, Completed: completed}
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeTasks) Update(_ context.Context, id uint64, title, description string, completed bool) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	t.Title, t.Description, t.Completed = title, description, completed
	f.tasks[id] = t
	return t, nil
}

func (f *fakeTasks) Delete(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

// doTask invokes a task handler with an optional :id path parameter.
func doTask(h echo.HandlerFunc, method, id, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	_ = h(c)
	return rec
}

func TestTask_CreateAndGet(t *testing.T) {
	h := NewTaskHandler(newFakeTasks())

	rec := doTask(h.Create, http.MethodPost, "", `{"title":"write report","description":"quarterly numbers","completed":false}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created taskResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	rec = doTask(h.Get, http.MethodGet, fmt.Sprint(created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got taskResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, created, got)
}

func TestTask_CreateValidation(t *testing.T) {
	h := NewTaskHandler(newFakeTasks())

	rec := doTask(h.Create, http.MethodPost, "", `{"title":"","description":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "validation failed")
}

func TestTask_List(t *testing.T) {
	store := newFakeTasks()
	h := NewTaskHandler(store)
	for i := 0; i < 3; i++ {
		doTask(h.Create, http.MethodPost, "", fmt.Sprintf(`{"title":"t%d","description":"d%d"}`, i, i))
	}

	rec := doTask(h.List, http.MethodGet, "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []taskResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 3)
}

func TestTask_Update(t *testing.T) {
	h := NewTaskHandler(newFakeTasks())
	doTask(h.Create, http.MethodPost, "", `{"title":"old","description":"old"}`)

	rec := doTask(h.Update, http.MethodPut, "1", `{"title":"new","description":"new","completed":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got taskResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "new", got.Title)
	require.True(t, got.Completed)

	rec = doTask(h.Update, http.MethodPut, "42", `{"title":"x","description":"y"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTask_Delete(t *testing.T) {
	h := NewTaskHandler(newFakeTasks())
	doTask(h.Create, http.MethodPost, "", `{"title":"t","description":"d"}`)

	rec := doTask(h.Delete, http.MethodDelete, "1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doTask(h.Delete, http.MethodDelete, "1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doTask(h.Get, http.MethodGet, "1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTask_InvalidID(t *testing.T) {
	h := NewTaskHandler(newFakeTasks())

	rec := doTask(h.Get, http.MethodGet, "abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
