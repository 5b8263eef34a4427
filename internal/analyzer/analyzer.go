package analyzer

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"soundclaim/internal/acr"
	"soundclaim/internal/links"
	"soundclaim/internal/llm"
	"soundclaim/internal/report"
)

// Recognizer is the fingerprinting-provider boundary.
type Recognizer interface {
	Recognize(ctx context.Context, filePath string) (map[string]any, error)
}

// ClipArchive stores analyzed clip bytes. Optional; failures are logged
// and never fail the request.
type ClipArchive interface {
	Put(ctx context.Context, clipID, name string, content []byte) error
}

type Options struct {
	// GenerationTimeout bounds the generation call. Zero means no
	// deadline beyond the request context.
	GenerationTimeout time.Duration
	// CacheSize enables the recognition cache when positive.
	CacheSize int
	// Archive enables clip archiving when non-nil.
	Archive ClipArchive
}

// Service drives the analysis pipeline: recognize, then generate,
// extract and normalize behind a single fail-soft boundary.
type Service struct {
	recognizer Recognizer
	generator  llm.TextGenerator
	archive    ClipArchive
	cache      *recognitionCache
	genTimeout time.Duration
}

func New(recognizer Recognizer, generator llm.TextGenerator, opts Options) *Service {
	return &Service{
		recognizer: recognizer,
		generator:  generator,
		archive:    opts.Archive,
		cache:      newRecognitionCache(opts.CacheSize),
		genTimeout: opts.GenerationTimeout,
	}
}

// Analyze runs the full pipeline for one clip. The only hard failure is
// the recognition call itself (no identity, nothing to report on); any
// failure past recognition degrades to a fallback report so that a
// misbehaving generation provider never fails the request.
func (s *Service) Analyze(ctx context.Context, filePath string) (Analysis, error) {
	payload, err := s.recognize(ctx, filePath)
	if err != nil {
		return Analysis{}, fmt.Errorf("recognize: %w", err)
	}

	identity, ok := acr.Identify(payload)
	if !ok {
		return Analysis{
			Success: false,
			Message: "Track not recognized",
			Raw:     payload,
		}, nil
	}

	searchLinks := links.OfficialSearchLinks(titleOf(identity), identity.Artists)
	copyrightReport := s.copyrightReport(ctx, identity)
	s.archiveClip(ctx, filePath)

	return Analysis{
		Success:             true,
		Identity:            identity,
		OfficialSearchLinks: searchLinks,
		CopyrightReport:     copyrightReport,
	}, nil
}

// copyrightReport is the single catch boundary for the generation side
// of the pipeline. Whatever goes wrong in generate, extract or
// normalize ends up as a fallback report, never as an error.
func (s *Service) copyrightReport(ctx context.Context, identity acr.TrackIdentity) report.NormalizedReport {
	if s.genTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.genTimeout)
		defer cancel()
	}

	raw, err := s.generator.Generate(ctx, report.BuildPrompt(identity))
	if err != nil {
		log.Printf("generation failed: %v", err)
		return report.Fallback(err)
	}
	parsed, err := report.Extract(raw)
	if err != nil {
		log.Printf("extraction failed: %v", err)
		return report.Fallback(err)
	}
	normalized, err := report.Normalize(parsed)
	if err != nil {
		log.Printf("normalization failed: %v", err)
		return report.Fallback(err)
	}
	return normalized
}

func (s *Service) recognize(ctx context.Context, filePath string) (map[string]any, error) {
	if s.cache == nil {
		return s.recognizer.Recognize(ctx, filePath)
	}
	key, err := clipDigest(filePath)
	if err != nil {
		return s.recognizer.Recognize(ctx, filePath)
	}
	if payload, ok := s.cache.Get(key); ok {
		return payload, nil
	}
	payload, err := s.recognizer.Recognize(ctx, filePath)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, payload)
	return payload, nil
}

func (s *Service) archiveClip(ctx context.Context, filePath string) {
	if s.archive == nil {
		return
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("clip archive: read %s: %v", filePath, err)
		return
	}
	digest, err := clipDigest(filePath)
	if err != nil {
		log.Printf("clip archive: digest %s: %v", filePath, err)
		return
	}
	if err := s.archive.Put(ctx, digest[:16], filepath.Base(filePath), data); err != nil {
		log.Printf("clip archive: put: %v", err)
	}
}

func titleOf(identity acr.TrackIdentity) string {
	if identity.Title == nil {
		return ""
	}
	return *identity.Title
}
