package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrap_Defaults(t *testing.T) {
	w := Wrap(httptest.NewRecorder())

	if w.StatusCode() != http.StatusOK {
		t.Errorf("expected default status 200, got %d", w.StatusCode())
	}
	if w.BytesWritten() != 0 {
		t.Errorf("expected 0 bytes written, got %d", w.BytesWritten())
	}
}

func TestWriteHeader_RecordsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusNotFound)

	if w.StatusCode() != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.StatusCode())
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected underlying writer to receive 404, got %d", rec.Code)
	}
}

func TestWriteHeader_OnlyOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	if w.StatusCode() != http.StatusCreated {
		t.Errorf("expected first status to win, got %d", w.StatusCode())
	}
}

func TestWrite_TracksBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	n, err := w.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5 bytes, got %d", n)
	}

	_, _ = w.Write([]byte(" world"))
	if w.BytesWritten() != 11 {
		t.Errorf("expected 11 bytes total, got %d", w.BytesWritten())
	}
	if w.StatusCode() != http.StatusOK {
		t.Errorf("expected implicit 200, got %d", w.StatusCode())
	}
}

func TestUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	if w.Unwrap() != rec {
		t.Error("expected Unwrap to return the underlying writer")
	}
}
