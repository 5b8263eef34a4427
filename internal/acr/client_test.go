package acr

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestRecognize_SendsSignedRequest(t *testing.T) {
	clip := []byte("fake audio bytes")
	clipPath := filepath.Join(t.TempDir(), "sample.mp3")
	if err := os.WriteFile(clipPath, clip, 0o644); err != nil {
		t.Fatalf("write clip: %v", err)
	}

	var gotFields map[string]string
	var gotSample []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotFields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			if len(v) > 0 {
				gotFields[k] = v[0]
			}
		}
		file, _, err := r.FormFile("sample")
		if err != nil {
			t.Errorf("sample file: %v", err)
		} else {
			defer file.Close()
			buf := make([]byte, len(clip)+1)
			n, _ := file.Read(buf)
			gotSample = buf[:n]
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": map[string]any{"msg": "Success"},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{
		Host:         srv.URL,
		AccessKey:    "test-key",
		AccessSecret: "test-secret",
	})
	payload, err := client.Recognize(context.Background(), clipPath)
	if err != nil {
		t.Fatalf("Recognize error: %v", err)
	}
	if !Recognized(payload) {
		t.Fatalf("payload not passed through: %#v", payload)
	}

	if gotFields["access_key"] != "test-key" {
		t.Fatalf("access_key = %q", gotFields["access_key"])
	}
	if gotFields["data_type"] != "audio" {
		t.Fatalf("data_type = %q", gotFields["data_type"])
	}
	if gotFields["signature_version"] != "1" {
		t.Fatalf("signature_version = %q", gotFields["signature_version"])
	}
	if gotFields["sample_bytes"] != strconv.Itoa(len(clip)) {
		t.Fatalf("sample_bytes = %q, want %d", gotFields["sample_bytes"], len(clip))
	}
	if string(gotSample) != string(clip) {
		t.Fatalf("sample body = %q", gotSample)
	}
	if want := client.sign(gotFields["timestamp"]); gotFields["signature"] != want {
		t.Fatalf("signature = %q, want %q", gotFields["signature"], want)
	}
}

func TestRecognize_NonOKStatus(t *testing.T) {
	clipPath := filepath.Join(t.TempDir(), "sample.wav")
	if err := os.WriteFile(clipPath, []byte("x"), 0o644); err != nil {
		t.Fatalf("write clip: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(Config{Host: srv.URL, AccessKey: "k", AccessSecret: "s"})
	if _, err := client.Recognize(context.Background(), clipPath); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestSign(t *testing.T) {
	client := NewClient(Config{Host: "identify-eu-west-1.acrcloud.com", AccessKey: "key", AccessSecret: "secret"})

	mac := hmac.New(sha1.New, []byte("secret"))
	mac.Write([]byte("POST\n/v1/identify\nkey\naudio\n1\n1700000000"))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if got := client.sign("1700000000"); got != want {
		t.Fatalf("sign = %q, want %q", got, want)
	}
}

func TestBaseURL(t *testing.T) {
	tests := map[string]string{
		"identify-eu-west-1.acrcloud.com":  "https://identify-eu-west-1.acrcloud.com",
		"https://identify.acrcloud.com/":   "https://identify.acrcloud.com",
		"http://127.0.0.1:9000":            "http://127.0.0.1:9000",
		" identify-us-west-2.acrcloud.com": "https://identify-us-west-2.acrcloud.com",
	}
	for in, want := range tests {
		if got := baseURL(in); got != want {
			t.Fatalf("baseURL(%q) = %q, want %q", in, got, want)
		}
	}
}
