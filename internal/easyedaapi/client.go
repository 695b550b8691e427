// Package easyedaapi fetches vendor component records and 3D-model
// assets from the EasyEDA public API.
package easyedaapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/linkyourbin/nlbn-gui/internal/apperror"
	"github.com/linkyourbin/nlbn-gui/internal/easyeda"
	"github.com/linkyourbin/nlbn-gui/internal/logging"
)

const userAgent = "nlbn/1.0.3"

// Fetcher retrieves component records and model assets.
type Fetcher interface {
	GetComponentData(ctx context.Context, lcscID string) (*easyeda.ComponentData, error)
	Download3DObj(ctx context.Context, uuid string) ([]byte, error)
	Download3DStep(ctx context.Context, uuid string) ([]byte, error)
}

const (
	defaultAPIBase     = "https://easyeda.com/api/products"
	defaultModulesBase = "https://modules.easyeda.com"
)

// Client is the default Fetcher, backed by net/http.
type Client struct {
	http        *http.Client
	apiBase     string
	modulesBase string
}

// New builds a Client with a reasonable request timeout.
func New() *Client {
	return &Client{
		http:        &http.Client{Timeout: 30 * time.Second},
		apiBase:     defaultAPIBase,
		modulesBase: defaultModulesBase,
	}
}

// NewWithBaseURLs builds a Client against overridden endpoints, for tests.
func NewWithBaseURLs(apiBase, modulesBase string) *Client {
	c := New()
	c.apiBase = apiBase
	c.modulesBase = modulesBase
	return c
}

type apiResponse struct {
	Success bool            `json:"success"`
	Result  *apiResultEnv   `json:"result"`
	Code    int             `json:"code"`
}

type apiResultEnv struct {
	Title         string          `json:"title"`
	DataStr       json.RawMessage `json:"dataStr"`
	Lcsc          json.RawMessage `json:"lcsc"`
	PackageDetail json.RawMessage `json:"packageDetail"`
}

type dataStrHead struct {
	X      float64         `json:"x"`
	Y      float64         `json:"y"`
	CPara  map[string]any  `json:"c_para"`
}

type dataStrObj struct {
	Head  dataStrHead `json:"head"`
	Shape []string    `json:"shape"`
}

// GetComponentData fetches and decodes one component record by LCSC id.
func (c *Client) GetComponentData(ctx context.Context, lcscID string) (*easyeda.ComponentData, error) {
	url := fmt.Sprintf("%s/%s/components?version=6.4.19.5", c.apiBase, lcscID)
	logging.Info("fetching component data", logging.Fields{"lcsc_id": lcscID})

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperror.InvalidData(fmt.Sprintf("failed to parse JSON: %v", err))
	}
	if !resp.Success || resp.Result == nil {
		return nil, apperror.NotFound(lcscID)
	}
	result := resp.Result

	var ds dataStrObj
	if len(result.DataStr) > 0 {
		if err := json.Unmarshal(result.DataStr, &ds); err != nil {
			return nil, apperror.InvalidData(fmt.Sprintf("failed to parse dataStr: %v", err))
		}
	}

	manufacturer, _ := ds.Head.CPara["BOM_Manufacturer"].(string)
	jlcID, _ := ds.Head.CPara["BOM_JLCPCB Part Class"].(string)

	var lcsc struct {
		URL string `json:"url"`
	}
	if len(result.Lcsc) > 0 {
		_ = json.Unmarshal(result.Lcsc, &lcsc)
	}

	data := &easyeda.ComponentData{
		LcscID:       lcscID,
		Title:        result.Title,
		DataStr:      ds.Shape,
		BBoxX:        ds.Head.X,
		BBoxY:        ds.Head.Y,
		Manufacturer: manufacturer,
		Datasheet:    lcsc.URL,
		JlcID:        jlcID,
	}

	if len(result.PackageDetail) > 0 {
		pkgShapes, pkgX, pkgY, err := parsePackageDetail(result.PackageDetail)
		if err != nil {
			logging.Warn("package_detail decode failed", logging.Fields{"err": err.Error()})
		} else {
			data.PackageDetail = pkgShapes
			data.PackageBBoxX = pkgX
			data.PackageBBoxY = pkgY
			data.Model3D = easyeda.Extract3DModel(pkgShapes)
		}
	}

	if data.Title == "" {
		return nil, apperror.InvalidData("missing title field")
	}

	logging.Debug("fetched component data", logging.Fields{
		"lcsc_id":     lcscID,
		"shapes":      len(data.DataStr),
		"pkg_shapes":  len(data.PackageDetail),
		"has_model3d": data.Model3D != nil,
	})

	return data, nil
}

// parsePackageDetail mirrors the original's tolerance for package_detail
// arriving either as {"dataStr":{"shape":[...]}} or as a bare shape array.
func parsePackageDetail(raw json.RawMessage) ([]string, float64, float64, error) {
	var wrapped struct {
		DataStr struct {
			Head  dataStrHead `json:"head"`
			Shape []string    `json:"shape"`
		} `json:"dataStr"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.DataStr.Shape) > 0 {
		return wrapped.DataStr.Shape, wrapped.DataStr.Head.X, wrapped.DataStr.Head.Y, nil
	}

	var bare []string
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, 0, 0, nil
	}

	return nil, 0, 0, nil
}

// Download3DObj fetches the OBJ geometry for a 3D-model UUID.
func (c *Client) Download3DObj(ctx context.Context, uuid string) ([]byte, error) {
	url := fmt.Sprintf("%s/3dmodel/%s", c.modulesBase, uuid)
	logging.Info("downloading 3d obj model", logging.Fields{"uuid": uuid})
	return c.get(ctx, url)
}

// Download3DStep fetches the STEP geometry for a 3D-model UUID. Failure
// here is non-fatal to the overall conversion: callers should log and
// continue without a STEP model.
func (c *Client) Download3DStep(ctx context.Context, uuid string) ([]byte, error) {
	url := fmt.Sprintf("%s/qAxj6KHrDKw4blvCG8QJPs7Y/%s", c.modulesBase, uuid)
	logging.Info("downloading 3d step model", logging.Fields{"uuid": uuid})
	return c.get(ctx, url)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperror.Fetch(err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperror.Fetch(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperror.NotFound(url)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperror.Fetch(fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Fetch(err)
	}
	return body, nil
}
