package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"museum-app/config"
	"museum-app/internal/types"
)

// Uploader is the object-storage collaborator. It takes raw bytes plus a
// deterministic key and hands back an opaque URL; everything else about the
// blob store is its business.
type Uploader interface {
	Upload(r io.Reader, key string) (string, error)
	Destroy(key string) error
}

// Default is the process-wide client, set up in main. Tests swap it for a stub.
var Default Uploader

func Init() {
	Default = &Client{
		BaseURL: strings.TrimRight(config.STORAGE_URL, "/"),
		APIKey:  config.STORAGE_KEY,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ImageKey names one image of a multi-image owner: "{id}:img:{index}:_:{kind}".
func ImageKey(ownerID string, index int, kind string) string {
	return fmt.Sprintf("%s:img:%d:_:%s", ownerID, index, kind)
}

// ProfileKey names the single profile-style image of an owner.
func ProfileKey(ownerID string) string {
	return ownerID + ":_:profile"
}

type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

func (c *Client) Upload(r io.Reader, key string) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if err := w.WriteField("public_id", key); err != nil {
		return "", types.Dependency("storage request: %v", err)
	}
	part, err := w.CreateFormFile("file", key)
	if err != nil {
		return "", types.Dependency("storage request: %v", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", types.Dependency("storage request: %v", err)
	}
	if err := w.Close(); err != nil {
		return "", types.Dependency("storage request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/upload", &body)
	if err != nil {
		return "", types.Dependency("storage request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", types.Dependency("storage upload failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", types.Dependency("storage upload failed: status %d", resp.StatusCode)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", types.Dependency("storage upload failed: %v", err)
	}
	if out.SecureURL == "" {
		return "", types.Dependency("storage upload failed: empty secure_url")
	}
	return out.SecureURL, nil
}

func (c *Client) Destroy(key string) error {
	form := url.Values{"public_id": {key}}
	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/destroy", strings.NewReader(form.Encode()))
	if err != nil {
		return types.Dependency("storage request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return types.Dependency("storage destroy failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Dependency("storage destroy failed: status %d", resp.StatusCode)
	}
	return nil
}
