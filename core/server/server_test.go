package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"departure-board/core/middleware/rayid"
	"departure-board/feature/static"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRoot(t *testing.T) string {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<title>SL</title>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "manifest.json"), []byte(`{"name":"SL"}`), 0644))
	return root
}

func assertCORS(t *testing.T, h http.Header) {
	t.Helper()
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", h.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", h.Get("Access-Control-Allow-Headers"))
}

func TestNew_ServesFilesWithCORS(t *testing.T) {
	srv, err := New(zap.NewNop(), static.NewFeature(setupRoot(t), zap.NewNop()))
	require.NoError(t, err)
	assert.Equal(t, []string{"static"}, srv.Features())

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Index", "/", fiber.StatusOK},
		{"File", "/manifest.json", fiber.StatusOK},
		{"Missing", "/sw.js", fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := srv.App().Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assertCORS(t, resp.Header)
			assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))
		})
	}
}

func TestNew_FeatureLoadFailure(t *testing.T) {
	srv, err := New(zap.NewNop(), static.NewFeature(filepath.Join(t.TempDir(), "missing"), zap.NewNop()))
	assert.Error(t, err)
	assert.Nil(t, srv)
}

func TestListen_PortInUse(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	port := taken.Addr().(*net.TCPAddr).Port

	ln, err := Listen("127.0.0.1", port)
	require.Error(t, err)
	assert.Nil(t, ln)
	assert.ErrorIs(t, err, ErrPortInUse)
	assert.Contains(t, err.Error(), strconv.Itoa(port))
	assert.Contains(t, err.Error(), fmt.Sprintf("serve %d", port+1))
}

func TestServe_RealListener(t *testing.T) {
	srv, err := New(zap.NewNop(), static.NewFeature(setupRoot(t), zap.NewNop()))
	require.NoError(t, err)

	ln, err := Listen("127.0.0.1", 0)
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/manifest.json", port))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"name":"SL"}`, string(body))
	assertCORS(t, resp.Header)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestLocalIP(t *testing.T) {
	ip := LocalIP()
	assert.NotNil(t, net.ParseIP(ip), "LocalIP returned %q", ip)
}

func TestLocalIPVia_Fallback(t *testing.T) {
	tests := []struct {
		name string
		addr string
	}{
		{"MissingPort", "8.8.8.8"},
		{"Unresolvable", "no-such-host.invalid:80"},
		{"Garbage", "::::"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Loopback, localIPVia(tt.addr))
		})
	}
}

func TestIsDesktop(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	tests := []struct {
		name string
		env  map[string]string
		goos string
		want bool
	}{
		{"HeadlessLinux", nil, "linux", false},
		{"X11", map[string]string{"DISPLAY": ":0"}, "linux", true},
		{"Wayland", map[string]string{"WAYLAND_DISPLAY": "wayland-0"}, "linux", true},
		{"Darwin", nil, "darwin", true},
		{"Windows", nil, "windows", true},
		{"FreeBSDHeadless", nil, "freebsd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDesktop(env(tt.env), tt.goos))
		})
	}
}
