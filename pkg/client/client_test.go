package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/callsheet/callsheet/pkg/schedule"
	"github.com/callsheet/callsheet/pkg/wire"
)

func echoProject(t *testing.T, w http.ResponseWriter, r *http.Request, id string) {
	t.Helper()
	var doc wire.Document
	require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
	if doc.ID == "" {
		doc.ID = id
	}
	doc.UpdatedAt = "01-09-2026 12:00:00"
	require.NoError(t, json.NewEncoder(w).Encode(doc))
}

func TestSaveRoutesCreateVersusUpdate(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		echoProject(t, w, r, "srv-1")
	}))
	defer srv.Close()

	c := New(srv.URL)
	doc := schedule.New()

	saved, err := c.Save(context.Background(), doc)
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "/api/projects/save", gotPath)
	require.Equal(t, "srv-1", saved.ID)

	_, err = c.Save(context.Background(), saved)
	require.NoError(t, err)
	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "/api/projects/srv-1", gotPath)
}

func TestGetDecodesDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/projects/abc", r.URL.Path)
		doc := wire.Encode(schedule.New())
		doc.ID = "abc"
		require.NoError(t, json.NewEncoder(w).Encode(doc))
	}))
	defer srv.Close()

	doc, err := New(srv.URL).Get(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, "abc", doc.ID)
	require.Len(t, doc.Days, 1)
}

func TestListPassesArchiveFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "true", r.URL.Query().Get("include_archived"))
		list := ProjectList{
			Active:   []ProjectSummary{{ID: "1", Name: "Active", DayCount: 3}},
			Archived: []ProjectSummary{{ID: "2", Name: "Old", Archived: true}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(list))
	}))
	defer srv.Close()

	list, err := New(srv.URL).List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, list.Active, 1)
	require.Len(t, list.Archived, 1)
	require.Equal(t, 3, list.Active[0].DayCount)
}

func TestDeleteAndArchive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete && r.URL.Path == "/api/projects/abc":
			_, _ = w.Write([]byte(`{"success": true}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/projects/abc/archive":
			_, _ = w.Write([]byte(`{"success": true, "archived": true}`))
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.Delete(context.Background(), "abc"))

	archived, err := c.ToggleArchive(context.Background(), "abc")
	require.NoError(t, err)
	require.True(t, archived)
}

func TestNonSuccessBecomesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Project not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Get(context.Background(), "missing")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusNotFound, se.Code)
	require.Equal(t, "Project not found", se.Detail)
}

func TestUploadLogoValidatesBeforeSending(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.NoError(t, r.ParseMultipartForm(maxLogoBytes))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		require.Equal(t, "logo.png", header.Filename)
		_, _ = w.Write([]byte(`{"success": true, "url": "/api/media/logo.png"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.UploadLogo(context.Background(), "notes.txt", []byte("hi"))
	require.ErrorIs(t, err, ErrLogoType)

	_, err = c.UploadLogo(context.Background(), "huge.png", make([]byte, maxLogoBytes+1))
	require.ErrorIs(t, err, ErrLogoTooLarge)

	require.Zero(t, requests, "invalid uploads must never reach the backend")

	url, err := c.UploadLogo(context.Background(), "logo.png", []byte("pngbytes"))
	require.NoError(t, err)
	require.Equal(t, "/api/media/logo.png", url)
	require.Equal(t, 1, requests)
}

func TestDuplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/projects/abc/duplicate", r.URL.Path)
		doc := wire.Encode(schedule.New())
		doc.ID = "copy-1"
		doc.Name = "Untitled Project (Copy)"
		require.NoError(t, json.NewEncoder(w).Encode(doc))
	}))
	defer srv.Close()

	doc, err := New(srv.URL).Duplicate(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, "copy-1", doc.ID)
	require.Equal(t, "Untitled Project (Copy)", doc.Name)
}

func TestExportCSV(t *testing.T) {
	csv := "SCHEDULE\nDate,Time From,Time To,Scene,Location,Cast,Notes\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/projects/abc/export.csv", r.URL.Path)
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(csv))
	}))
	defer srv.Close()

	data, err := New(srv.URL).ExportCSV(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, csv, string(data))
}

func TestNetworkFailureWrapsError(t *testing.T) {
	c := New("http://127.0.0.1:0")
	_, err := c.List(context.Background(), false)
	require.Error(t, err)

	var se *StatusError
	require.False(t, errors.As(err, &se), "transport failures are not status errors")
}
