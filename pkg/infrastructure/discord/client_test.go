package discord_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"botbase/pkg/infrastructure/discord"
)

func TestNotify(t *testing.T) {
	var gotContent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err.Error())
		}
		gotContent = r.PostFormValue("content")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := discord.NewClient(server.URL)
	if err := c.Notify("hello", ""); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	// メッセージは前後に半角スペースを付けて送られる
	if gotContent != " hello " {
		t.Errorf("content = %q, want %q", gotContent, " hello ")
	}
}

func TestNotify_WithAttachment(t *testing.T) {
	var gotContent, gotFileName string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatal(err.Error())
		}
		gotContent = r.PostFormValue("content")
		file, header, err := r.FormFile("imageFile")
		if err != nil {
			t.Fatal(err.Error())
		}
		defer file.Close()
		gotFileName = header.Filename
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "chart.png")
	if err := os.WriteFile(path, []byte("image bytes"), 0644); err != nil {
		t.Fatal(err.Error())
	}

	c := discord.NewClient(server.URL)
	if err := c.Notify("with chart", path); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	if gotContent != " with chart " {
		t.Errorf("content = %q, want %q", gotContent, " with chart ")
	}
	if gotFileName != "chart.png" {
		t.Errorf("file name = %v, want chart.png", gotFileName)
	}
}

func TestNotify_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := discord.NewClient(server.URL)
	if err := c.Notify("hello", ""); err == nil {
		t.Fatal("Notify() error is nil, want error")
	}
}
