package sysinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

// maxPublicIPBody caps how much of the lookup response is read.
const maxPublicIPBody = 64 << 10

// LookupPublicIP queries url for the caller's public address. The service
// may answer with a JSON object carrying an "ip" field (api.ipify.org with
// format=json) or with the bare address as text (icanhazip.com). Any status
// other than 200 is an error. The request is bound to ctx.
func LookupPublicIP(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json, text/plain")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s from %s", resp.Status, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPublicIPBody))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return parsePublicIP(body)
}

func parsePublicIP(body []byte) (string, error) {
	text := strings.TrimSpace(string(body))

	ip := text
	if strings.HasPrefix(text, "{") {
		var payload struct {
			IP string `json:"ip"`
		}
		if err := json.Unmarshal([]byte(text), &payload); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
		ip = strings.TrimSpace(payload.IP)
	}

	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid address %q in response", ip)
	}
	return ip, nil
}
