package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"mindconnect/internal/domain"
	"mindconnect/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

func init() { gin.SetMode(gin.TestMode) }

func TestRespondErrorStatuses(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.Validation("X", "bad"), http.StatusBadRequest, "X"},
		{domain.NotFound(domain.CodeNotFound, "gone"), http.StatusNotFound, domain.CodeNotFound},
		{domain.Conflict(domain.CodeDuplicateRecord, "dup", errors.New("unique")), http.StatusConflict, domain.CodeDuplicateRecord},
		{domain.Unauthorized(domain.CodeInvalidCredentials, "no"), http.StatusUnauthorized, domain.CodeInvalidCredentials},
		{domain.Upstream("down", nil), http.StatusBadGateway, "UPSTREAM_ERROR"},
		{errors.New("disk on fire"), http.StatusInternalServerError, domain.CodeServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
		respondError(c, tc.err)
		if w.Code != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err, w.Code, tc.status)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != tc.code {
			t.Errorf("%v: code = %q", tc.err, body["code"])
		}
		if tc.status == http.StatusInternalServerError && body["error"] != "Internal server error" {
			t.Errorf("internal error leaked: %q", body["error"])
		}
	}
}

type fakeCloud struct {
	preset   cloudinary.Preset
	publicID string
	data     []byte
	err      error
}

func (f *fakeCloud) UploadImage(_ context.Context, file io.Reader, preset cloudinary.Preset, publicID string) (*cloudinary.Upload, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.preset, f.publicID = preset, publicID
	f.data, _ = io.ReadAll(file)
	return &cloudinary.Upload{URL: "https://img/" + publicID, PublicID: publicID}, nil
}

func uploadRequest(t *testing.T, kind string, file []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if kind != "" {
		_ = mw.WriteField("kind", kind)
	}
	if file != nil {
		fw, err := mw.CreateFormFile("file", "logo.png")
		if err != nil {
			t.Fatal(err)
		}
		_, _ = fw.Write(file)
	}
	_ = mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	cloud := &fakeCloud{}
	r := gin.New()
	r.POST("/upload", NewUploadHandler(cloud).UploadImage)

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := serve(uploadRequest(t, "Logo", []byte("png-bytes")))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if cloud.preset != cloudinary.LogoPreset || string(cloud.data) != "png-bytes" || len(cloud.publicID) != len("logo_")+16 {
		t.Errorf("upload = %+v", cloud)
	}

	for _, tc := range []struct {
		req    *http.Request
		status int
		code   string
	}{
		{uploadRequest(t, "avatar", []byte("x")), http.StatusBadRequest, domain.CodeInvalidKind},
		{uploadRequest(t, "event", nil), http.StatusBadRequest, domain.CodeMissingFile},
	} {
		w := serve(tc.req)
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != tc.status || body["code"] != tc.code {
			t.Errorf("got %d %v, want %d %s", w.Code, body, tc.status, tc.code)
		}
	}

	cloud.err = errors.New("cloudinary: quota")
	if w := serve(uploadRequest(t, "event", []byte("x"))); w.Code != http.StatusBadGateway {
		t.Errorf("failed upload status = %d", w.Code)
	}
}
