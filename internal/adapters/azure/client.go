// Package azure implements ports.Synthesizer against the Azure Batch
// Synthesis API: submit a job, poll until it finishes, download and unpack
// the result archive, and clean the job up server-side.
package azure

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wavenote/speechsubs/internal/domain"
	"github.com/wavenote/speechsubs/internal/ports"
)

const (
	apiVersion          = "2024-04-01"
	defaultPollInterval = 5 * time.Second
)

// Client talks to the Azure Batch Synthesis API for one region.
type Client struct {
	key          string
	baseURL      string
	httpClient   *http.Client
	pollInterval time.Duration
}

// NewClient creates a client for the given subscription key and region.
func NewClient(key, region string) *Client {
	return &Client{
		key:          key,
		baseURL:      fmt.Sprintf("https://%s.api.cognitive.microsoft.com", region),
		httpClient:   &http.Client{Timeout: 2 * time.Minute},
		pollInterval: defaultPollInterval,
	}
}

type synthesisRequest struct {
	InputKind       string           `json:"inputKind"`
	SynthesisConfig synthesisConfig  `json:"synthesisConfig"`
	Inputs          []synthesisInput `json:"inputs"`
	Properties      jobProperties    `json:"properties"`
}

type synthesisConfig struct {
	Voice string `json:"voice"`
}

type synthesisInput struct {
	Content string `json:"content"`
}

type jobProperties struct {
	OutputFormat            string `json:"outputFormat"`
	WordBoundaryEnabled     bool   `json:"wordBoundaryEnabled"`
	SentenceBoundaryEnabled bool   `json:"sentenceBoundaryEnabled"`
	ConcatenateResult       bool   `json:"concatenateResult"`
	DecompressOutputFiles   bool   `json:"decompressOutputFiles"`
}

type jobStatus struct {
	Status  string `json:"status"`
	Outputs struct {
		Result string `json:"result"`
	} `json:"outputs"`
}

func (c *Client) jobURL(jobID string) string {
	return fmt.Sprintf("%s/texttospeech/batchsyntheses/%s?api-version=%s", c.baseURL, jobID, apiVersion)
}

// Synthesize runs one batch synthesis job and places the extracted WAV,
// word boundary metadata, and summary in destDir.
func (c *Client) Synthesize(ctx context.Context, text, voice, destDir string) (*ports.SynthesisResult, error) {
	if c.key == "" {
		return nil, domain.ErrMissingCredentials
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, err
	}

	jobID := uuid.NewString()
	jobURL := c.jobURL(jobID)

	if err := c.submitJob(ctx, jobURL, text, voice); err != nil {
		return nil, fmt.Errorf("submit synthesis job: %w", err)
	}

	status, err := c.waitForJob(ctx, jobURL)
	if err != nil {
		return nil, err
	}

	zipPath := filepath.Join(destDir, jobID+"_results.zip")
	if err := c.downloadFile(ctx, status.Outputs.Result, zipPath); err != nil {
		return nil, fmt.Errorf("download results: %w", err)
	}

	result, err := extractResults(zipPath, destDir)
	// Remove the archive whether or not extraction succeeded.
	os.Remove(zipPath)
	if err != nil {
		return nil, fmt.Errorf("extract results: %w", err)
	}

	// Delete the server-side job; cleanup failure doesn't break the run.
	c.deleteJob(ctx, jobURL)

	return result, nil
}

func (c *Client) submitJob(ctx context.Context, jobURL, text, voice string) error {
	payload := synthesisRequest{
		InputKind:       "PlainText",
		SynthesisConfig: synthesisConfig{Voice: voice},
		Inputs:          []synthesisInput{{Content: text}},
		Properties: jobProperties{
			OutputFormat:        "riff-24khz-16bit-mono-pcm",
			WordBoundaryEnabled: true,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, jobURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// waitForJob polls the job until it reports Succeeded or Failed.
func (c *Client) waitForJob(ctx context.Context, jobURL string) (*jobStatus, error) {
	for {
		status, err := c.getJob(ctx, jobURL)
		if err != nil {
			return nil, fmt.Errorf("poll synthesis job: %w", err)
		}

		switch status.Status {
		case "Succeeded":
			return status, nil
		case "Failed":
			return nil, fmt.Errorf("job reported Failed: %w", domain.ErrSynthesisFailed)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}

func (c *Client) getJob(ctx context.Context, jobURL string) (*jobStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jobURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var status jobStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) deleteJob(ctx context.Context, jobURL string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, jobURL, nil)
	if err != nil {
		return
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}

// downloadFile streams a URL to destPath through a temp file so a failed
// download leaves nothing behind.
func (c *Client) downloadFile(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	tempPath := destPath + ".tmp"
	out, err := os.Create(tempPath)
	if err != nil {
		return err
	}

	success := false
	defer func() {
		out.Close()
		if !success {
			os.Remove(tempPath)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return err
	}

	out.Close()
	if err := os.Rename(tempPath, destPath); err != nil {
		return err
	}

	success = true
	return nil
}

// extractResults unpacks the result archive and classifies its files.
func extractResults(zipPath, destDir string) (*ports.SynthesisResult, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	result := &ports.SynthesisResult{}
	var boundariesPath string

	for _, f := range zr.File {
		name := filepath.Base(f.Name)
		if f.FileInfo().IsDir() || name == "." || name == ".." {
			continue
		}

		destPath := filepath.Join(destDir, name)
		if err := extractFile(f, destPath); err != nil {
			return nil, err
		}

		switch {
		case strings.HasSuffix(name, ".wav"):
			result.AudioPath = destPath
		case strings.HasSuffix(name, ".word.json"):
			boundariesPath = destPath
		case name == "summary.json":
			result.SummaryPath = destPath
		}
	}

	if result.AudioPath == "" {
		return nil, fmt.Errorf("result archive contains no audio file")
	}
	if boundariesPath == "" {
		return nil, fmt.Errorf("result archive contains no word boundary file")
	}

	data, err := os.ReadFile(boundariesPath)
	if err != nil {
		return nil, err
	}
	words, err := decodeWordBoundaries(data)
	if err != nil {
		return nil, err
	}
	result.Words = words

	return result, nil
}

func extractFile(f *zip.File, destPath string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return err
	}

	_, err = io.Copy(out, rc)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return err
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

// Ensure Client implements interface
var _ ports.Synthesizer = (*Client)(nil)
