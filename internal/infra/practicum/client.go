// Package practicum implements the homework status API client.
package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// ErrRequestFailed means the API could not be reached at all.
	ErrRequestFailed = errors.New("request to homework API failed")
	// ErrBadStatus means the API answered with a non-200 status code.
	ErrBadStatus = errors.New("homework API returned unexpected status")
	// ErrDecodeFailed means the response body is not valid JSON.
	ErrDecodeFailed = errors.New("failed to decode homework API response")
)

// StatusError carries the HTTP status code of a rejected request.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrBadStatus, e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrBadStatus
}

// Client fetches homework statuses from the review API.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.WithField("component", "practicum_client"),
	}
}

// FetchStatuses requests homeworks updated since fromDate (unix seconds)
// and returns the decoded JSON body.
func (c *Client) FetchStatuses(ctx context.Context, fromDate int64) (any, error) {
	logCtx := c.logger.WithFields(logrus.Fields{
		"endpoint":  c.endpoint,
		"from_date": fromDate,
	})

	u, err := url.Parse(c.endpoint)
	if err != nil {
		logCtx.WithError(err).Error("Invalid API endpoint")
		return nil, fmt.Errorf("%w: invalid endpoint: %v", ErrRequestFailed, err)
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		logCtx.WithError(err).Error("Failed to build API request")
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logCtx.WithError(err).Error("Request to homework API failed")
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	logCtx = logCtx.WithField("status_code", resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := &StatusError{Code: resp.StatusCode}
		logCtx.WithField("body", string(body)).WithError(err).Error("Homework API returned non-200 status")
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logCtx.WithError(err).Error("Failed to read homework API response")
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		logCtx.WithError(err).Error("Failed to decode homework API response")
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	logCtx.Debug("Homework API response received")
	return payload, nil
}
