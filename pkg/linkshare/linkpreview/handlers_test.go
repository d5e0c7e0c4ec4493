package linkpreview

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/apierror"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/validation"
)

// rewriteTransport sends every request to the test server, whatever its host
type rewriteTransport struct {
	target *url.URL
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = t.target.Scheme
	req.URL.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func setupTestRouter(resolver *Resolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(resolver)
	handler.RegisterRoutes(r.Group("/api"))
	return r
}

func upstream(t *testing.T, handler http.HandlerFunc) *Resolver {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	target, _ := url.Parse(srv.URL)
	return NewResolver(WithHTTPClient(&http.Client{Transport: rewriteTransport{target: target}}))
}

func previewRequest(router *gin.Engine, link string) *httptest.ResponseRecorder {
	path := "/api/link-preview"
	if link != "" {
		path += "?url=" + url.QueryEscape(link)
	}
	req, _ := http.NewRequest("GET", path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGetPreview(t *testing.T) {
	resolver := upstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/abc" {
			t.Errorf("Expected upstream path /abc, got %s", r.URL.Path)
		}
		fmt.Fprint(w, ogPage)
	})
	router := setupTestRouter(resolver)

	resp := previewRequest(router, "https://chat.whatsapp.com/abc")

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var preview Preview
	json.Unmarshal(resp.Body.Bytes(), &preview)

	if preview.Title != "Football Fans United" {
		t.Errorf("Expected title 'Football Fans United', got %s", preview.Title)
	}
	if resp.Header().Get("X-Preview-Source") != "fetched" {
		t.Errorf("Expected source 'fetched', got %s", resp.Header().Get("X-Preview-Source"))
	}
}

func TestGetPreviewUpstreamFailure(t *testing.T) {
	resolver := upstream(t, func(w http.ResponseWriter, r *http.Request) {
		// Drop the connection without a response
		hj, ok := w.(http.Hijacker)
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		conn, _, _ := hj.Hijack()
		conn.Close()
	})
	router := setupTestRouter(resolver)

	resp := previewRequest(router, "https://chat.whatsapp.com/broken")

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var preview Preview
	json.Unmarshal(resp.Body.Bytes(), &preview)

	if preview != Default() {
		t.Errorf("Expected default preview, got %+v", preview)
	}
	if resp.Header().Get("X-Preview-Source") != "fallback" {
		t.Errorf("Expected source 'fallback', got %s", resp.Header().Get("X-Preview-Source"))
	}
}

func TestGetPreviewMissingURL(t *testing.T) {
	router := setupTestRouter(NewResolver())

	resp := previewRequest(router, "")

	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.Code)
	}
	var body apierror.Response
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body.Message != "URL parameter is required" {
		t.Errorf("Expected message 'URL parameter is required', got %s", resp.Body.String())
	}
}

func TestGetPreviewRejectsOtherHosts(t *testing.T) {
	router := setupTestRouter(NewResolver())

	resp := previewRequest(router, "https://example.com/abc")

	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.Code)
	}
	var body apierror.Response
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body.Message != validation.InvalidLinkMessage {
		t.Errorf("Expected message %q, got %q", validation.InvalidLinkMessage, body.Message)
	}
}
