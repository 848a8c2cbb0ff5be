// Package editorial wires the discovery, fetch and segmentation stages into
// the end-to-end contest editorial pipeline.
package editorial

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/deyna256/codeforces-contest-scraper/models"
	"github.com/deyna256/codeforces-contest-scraper/pkg/cache"
	"github.com/deyna256/codeforces-contest-scraper/pkg/contest"
	"github.com/deyna256/codeforces-contest-scraper/pkg/editorial"
)

// Service runs the full pipeline for one contest: discover editorial URLs,
// fetch and combine their content, segment it per problem and reconcile the
// result to the requesting contest.
type Service struct {
	pages     *contest.PageParser
	content   *editorial.ContentFetcher
	segmenter *editorial.Segmenter
	cache     cache.Cache
	logger    *slog.Logger
}

// NewService builds the pipeline. The cache is optional; when present,
// complete results are cached per contest.
func NewService(pages *contest.PageParser, content *editorial.ContentFetcher, segmenter *editorial.Segmenter, resultCache cache.Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		pages:     pages,
		content:   content,
		segmenter: segmenter,
		cache:     resultCache,
		logger:    logger,
	}
}

// GetEditorialContent extracts per-problem editorial analyses for a contest.
// Known editorial URLs can be passed in to skip discovery; otherwise the
// contest page is parsed for them. Returns EditorialNotFoundError when no
// URLs are known or discoverable.
func (s *Service) GetEditorialContent(ctx context.Context, contestID string, editorialURLs []string) (models.ContestEditorialResult, error) {
	cacheKey := "editorial:" + contestID
	if s.cache != nil {
		if raw, ok, err := s.cache.Get(ctx, cacheKey); err == nil && ok {
			var cached models.ContestEditorialResult
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				s.logger.Debug("editorial result served from cache", "contest_id", contestID)
				return cached, nil
			}
			s.logger.Warn("discarding unreadable cached editorial result", "contest_id", contestID)
		}
	}

	urls := editorialURLs
	if len(urls) == 0 {
		page, err := s.pages.ParseContestPage(ctx, contestID)
		if err != nil {
			// Discovery failure is not fatal by itself; without URLs the
			// not-found error below reports the real outcome.
			s.logger.Warn("contest page parse failed during discovery",
				"contest_id", contestID, "error", err)
		} else {
			urls = page.EditorialURLs
		}
	}
	if len(urls) == 0 {
		return models.ContestEditorialResult{}, &editorial.EditorialNotFoundError{ContestID: contestID}
	}

	docs, err := s.content.FetchAll(ctx, urls)
	if err != nil {
		return models.ContestEditorialResult{}, err
	}

	combined := editorial.Combine(docs)
	segmented, _, err := s.segmenter.Segment(ctx, combined, contestID, nil)
	if err != nil {
		return models.ContestEditorialResult{}, err
	}

	result := models.ContestEditorialResult{
		ContestID: contestID,
		Analyses:  editorial.Reconcile(segmented, contestID),
	}
	s.logger.Info("editorial extraction finished",
		"contest_id", contestID, "sources", len(docs), "problems", len(result.Analyses))

	if s.cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(raw)); err != nil {
				s.logger.Debug("failed to cache editorial result",
					"contest_id", contestID, "error", err)
			}
		}
	}
	return result, nil
}
