/* feed.go
 * Contains the HTTP client used to fetch scoreboard and schedule data from
 * the external score feed, and return the validated results to the higher
 * level functions
 */

package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// UnavailableError is returned when the score feed cannot be reached or
// returns an unusable response. Callers must handle it explicitly rather
// than score a partial week.
type UnavailableError struct {
	URL string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("score feed unavailable (%s): %v", e.URL, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Client fetches data from the score feed. Requests are rate limited and
// retried once; a second failure surfaces as *UnavailableError.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
	Limiter   *rate.Limiter

	// Fallback season position used by CurrentWeek when the feed is down.
	FallbackYear int
	FallbackWeek int
}

// NewClient creates a feed client for the given base URL.
func NewClient(baseURL string, fallbackYear int, fallbackWeek int) *Client {
	return &Client{
		HTTP:         &http.Client{Timeout: 10 * time.Second},
		BaseURL:      baseURL,
		UserAgent:    "SurvivorPoolFetcher/1.0",
		Limiter:      rate.NewLimiter(rate.Every(time.Second), 2),
		FallbackYear: fallbackYear,
		FallbackWeek: fallbackWeek,
	}
}

// FetchScoreboard fetches and validates the live scoreboard for a week.
// Preconditions: receives a context, season year and week number
// Postconditions: returns a validated Scoreboard, or *UnavailableError if the
// feed cannot be reached, or a parse error if the payload shape is wrong
func (c *Client) FetchScoreboard(ctx context.Context, year int, week int) (*Scoreboard, error) {
	url := fmt.Sprintf("%s/seasons/%d/weeks/%d/scoreboard", c.BaseURL, year, week)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseScoreboard(body)
}

// FetchTeamSchedules fetches and validates the season schedule for every
// team. The returned slice has one entry per team abbreviation.
func (c *Client) FetchTeamSchedules(ctx context.Context, year int, teamIDs []string) ([]TeamSchedule, error) {
	var schedules []TeamSchedule
	for _, id := range teamIDs {
		url := fmt.Sprintf("%s/seasons/%d/teams/%s/schedule", c.BaseURL, year, id)
		body, err := c.get(ctx, url)
		if err != nil {
			return nil, err
		}
		ts, err := ParseTeamSchedule(body)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *ts)
	}
	return schedules, nil
}

// CurrentWeek returns the feed's current season year, week number and phase
// tag. A feed failure degrades to the configured fallback year/week with the
// "regular" phase rather than returning an error, since downstream callers
// only use this to position reports.
func (c *Client) CurrentWeek(ctx context.Context) (int, int, string) {
	url := fmt.Sprintf("%s/scoreboard", c.BaseURL)
	body, err := c.get(ctx, url)
	if err != nil {
		return c.FallbackYear, c.FallbackWeek, "regular"
	}
	sb, err := ParseScoreboard(body)
	if err != nil {
		return c.FallbackYear, c.FallbackWeek, "regular"
	}
	return sb.Year, sb.Week, sb.Phase
}

// get performs a rate-limited GET with a single retry. Any terminal failure
// is wrapped in *UnavailableError.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, &UnavailableError{URL: url, Err: err}
		}
		body, err := c.getOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
	}
	return nil, &UnavailableError{URL: url, Err: lastErr}
}

func (c *Client) getOnce(ctx context.Context, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("User-Agent", c.UserAgent)
	request.Header.Set("Accept", "application/json")

	response, err := c.HTTP.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", response.StatusCode)
	}
	return io.ReadAll(response.Body)
}
