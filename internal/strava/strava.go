// Package strava implements the Strava API methods used to fetch an
// athlete's activity history.
package strava

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lildude/stravastats/internal/client"
	"github.com/sirupsen/logrus"
)

// MaxPerPage is the largest page size the Strava API accepts.
const MaxPerPage = 200

// ErrTooManyPages is returned by ListAllActivities when the page cap is
// reached before the API reports an empty page.
var ErrTooManyPages = errors.New("strava: too many pages")

// Activity holds only the data we want from the Strava API for an activity.
// Distance is in metres, MovingTime and ElapsedTime in seconds. StartDate is
// UTC; StartDateLocal carries the athlete's wall-clock time and is the one to
// use when grouping by calendar day.
type Activity struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Distance       float64   `json:"distance"`
	MovingTime     int64     `json:"moving_time"`
	ElapsedTime    int64     `json:"elapsed_time"`
	StartDate      time.Time `json:"start_date"`
	StartDateLocal time.Time `json:"start_date_local"`
}

// ActivityService fetches activities for the authenticated athlete.
type ActivityService struct {
	client   *client.Client
	log      logrus.FieldLogger
	perPage  int
	maxPages int
}

// NewActivityService returns an ActivityService that fetches perPage
// activities per request and refuses to fetch more than maxPages pages.
func NewActivityService(c *client.Client, log logrus.FieldLogger, perPage, maxPages int) (*ActivityService, error) {
	if perPage < 1 || perPage > MaxPerPage {
		return nil, fmt.Errorf("strava: per page must be between 1 and %d, got %d", MaxPerPage, perPage)
	}
	if maxPages < 1 {
		return nil, fmt.Errorf("strava: max pages must be at least 1, got %d", maxPages)
	}

	return &ActivityService{client: c, log: log, perPage: perPage, maxPages: maxPages}, nil
}

// ListActivities fetches a single page of the athlete's activities. Pages are
// numbered from 1.
func (s *ActivityService) ListActivities(ctx context.Context, page int) ([]Activity, error) {
	if page < 1 {
		return nil, fmt.Errorf("strava: page must be at least 1, got %d", page)
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(s.perPage))

	var activities []Activity
	req, err := s.client.NewRequest(ctx, http.MethodGet, "/api/v3/athlete/activities?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating list activities request: %w", err)
	}

	if _, err := s.client.Do(req, &activities); err != nil {
		return nil, fmt.Errorf("listing activities page %d: %w", page, err)
	}

	return activities, nil
}

// ListAllActivities fetches every page of the athlete's activities, starting
// at page 1, until the API returns an empty page. A failure on any page
// aborts the whole fetch; no partial history is returned. The page cap guards
// against a server that never reports an empty page.
func (s *ActivityService) ListAllActivities(ctx context.Context) ([]Activity, error) {
	var all []Activity
	for page := 1; ; page++ {
		if page > s.maxPages {
			return nil, fmt.Errorf("strava: no empty page after %d pages: %w", s.maxPages, ErrTooManyPages)
		}

		activities, err := s.ListActivities(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(activities) == 0 {
			break
		}

		all = append(all, activities...)
		s.log.WithFields(logrus.Fields{
			"page":  page,
			"count": len(activities),
			"total": len(all),
		}).Info("fetched activities page")
	}

	return all, nil
}
