// Package preview renders entry images as terminal art via chafa.
package preview

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strings"
	"time"
)

const (
	previewRows  = 18
	maxImageSize = 5 * 1024 * 1024
)

// LookPathFunc is exposed for testing.
var LookPathFunc = exec.LookPath

// Available reports whether chafa is installed.
func Available() bool {
	_, err := LookPathFunc("chafa")
	return err == nil
}

// Render downloads the image and converts it to ANSI art sized for the given
// width. It returns an error when chafa is missing or the download fails; the
// caller falls back to showing the image link.
func Render(imageURL string, width int) (string, error) {
	if width < 30 {
		width = 40
	}

	chafaPath, err := LookPathFunc("chafa")
	if err != nil {
		return "", fmt.Errorf("chafa is not installed")
	}

	client := &http.Client{Timeout: 8 * time.Second}
	resp, err := client.Get(imageURL)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	cmd := exec.Command(chafaPath,
		"--size", fmt.Sprintf("%dx%d", width, previewRows),
		"--align", "top,center",
		"--format", "symbols",
		"-",
	)
	cmd.Stdin = bytes.NewReader(imageData)
	output, err := cmd.CombinedOutput()
	trimmed := strings.TrimRight(string(output), "\r\n")
	if err != nil {
		return "", fmt.Errorf("render image via chafa: %w: %s", err, strings.TrimSpace(trimmed))
	}
	if strings.TrimSpace(trimmed) == "" {
		return "", fmt.Errorf("empty output from chafa")
	}
	return trimmed, nil
}
