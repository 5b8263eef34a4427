package acr

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// API reference: https://docs.acrcloud.com/reference/identification-api

const identifyPath = "/v1/identify"

type Config struct {
	Host         string
	AccessKey    string
	AccessSecret string
	Timeout      time.Duration
	RPS          float64
	Burst        int
}

// Client identifies audio clips against the ACRCloud identification API.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	var limiter *rate.Limiter
	if cfg.RPS > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), burst)
	}
	return &Client{
		cfg:        cfg,
		baseURL:    baseURL(cfg.Host),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
	}
}

// Recognize uploads the audio file and returns the provider payload
// decoded as-is. Interpreting the payload is left to Identify so that
// callers keep access to the raw response for diagnostics.
func (c *Client) Recognize(ctx context.Context, filePath string) (map[string]any, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open clip: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat clip: %w", err)
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("sample", filepath.Base(filePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, file); err != nil {
		return nil, fmt.Errorf("read clip: %w", err)
	}
	_ = w.WriteField("sample_bytes", strconv.FormatInt(info.Size(), 10))
	_ = w.WriteField("access_key", c.cfg.AccessKey)
	_ = w.WriteField("data_type", "audio")
	_ = w.WriteField("signature_version", "1")
	_ = w.WriteField("timestamp", timestamp)
	_ = w.WriteField("signature", c.sign(timestamp))
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+identifyPath, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("acrcloud request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("acrcloud responded with %d", res.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode acrcloud response: %w", err)
	}
	return payload, nil
}

// sign produces the v1 request signature: base64(hmac-sha1) over the
// newline-joined method, path, key, data type, signature version and
// timestamp.
func (c *Client) sign(timestamp string) string {
	stringToSign := strings.Join([]string{
		http.MethodPost,
		identifyPath,
		c.cfg.AccessKey,
		"audio",
		"1",
		timestamp,
	}, "\n")
	mac := hmac.New(sha1.New, []byte(c.cfg.AccessSecret))
	mac.Write([]byte(stringToSign))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func baseURL(host string) string {
	host = strings.TrimSuffix(strings.TrimSpace(host), "/")
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return host
	}
	return "https://" + host
}
