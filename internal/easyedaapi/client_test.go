package easyedaapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetComponentDataHappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.Write([]byte(`{
			"success": true,
			"result": {
				"title": "0805 Capacitor",
				"dataStr": {
					"head": {"x": 10, "y": 20, "c_para": {"BOM_Manufacturer": "Acme", "BOM_JLCPCB Part Class": "C123"}},
					"shape": ["R~1~2~3~4~5~6~7~8~9~1"]
				},
				"lcsc": {"url": "https://example.com/datasheet.pdf"},
				"packageDetail": {
					"dataStr": {
						"head": {"x": 1, "y": 2},
						"shape": ["SVGNODE~{\"attrs\":{\"c_etype\":\"outline3D\",\"uuid\":\"u-1\",\"title\":\"Cap.step\"}}"]
					}
				}
			}
		}`))
	}))
	defer srv.Close()

	c := NewWithBaseURLs(srv.URL, srv.URL)
	data, err := c.GetComponentData(context.Background(), "C123456")
	require.NoError(t, err)
	assert.Equal(t, "0805 Capacitor", data.Title)
	assert.Equal(t, 10.0, data.BBoxX)
	assert.Equal(t, 20.0, data.BBoxY)
	assert.Equal(t, "Acme", data.Manufacturer)
	assert.Equal(t, "C123", data.JlcID)
	assert.Equal(t, "https://example.com/datasheet.pdf", data.Datasheet)
	require.Len(t, data.DataStr, 1)
	require.NotNil(t, data.Model3D)
	assert.Equal(t, "u-1", data.Model3D.UUID)
	assert.Equal(t, 1.0, data.PackageBBoxX)
}

func TestGetComponentDataNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false}`))
	}))
	defer srv.Close()

	c := NewWithBaseURLs(srv.URL, srv.URL)
	_, err := c.GetComponentData(context.Background(), "C999999")
	require.Error(t, err)
}

func TestGetComponentDataHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewWithBaseURLs(srv.URL, srv.URL)
	_, err := c.GetComponentData(context.Background(), "C1")
	require.Error(t, err)
}

func TestParsePackageDetailBareArray(t *testing.T) {
	shapes, x, y, err := parsePackageDetail([]byte(`["SHAPE1", "SHAPE2"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"SHAPE1", "SHAPE2"}, shapes)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestDownload3DObj(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("o 1\nv 0 0 0\n"))
	}))
	defer srv.Close()

	c := NewWithBaseURLs(srv.URL, srv.URL)
	body, err := c.Download3DObj(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Contains(t, string(body), "v 0 0 0")
}
