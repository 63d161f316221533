package knowledge

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/hrdesk/internal/config"
	"github.com/spec-kit/hrdesk/internal/domain"
)

// PDFExtractor turns one PDF file into plain text. Extraction is an external
// concern; when nil, PDF files are skipped.
type PDFExtractor func(path string) (string, error)

// Loader aggregates the reference documents into one KnowledgeBlob. The blob
// is loaded on first use and cached for the process lifetime; document changes
// on disk are not observed until restart.
type Loader struct {
	dir        string
	pdfExtract PDFExtractor
	logger     *zap.Logger

	once sync.Once
	blob domain.KnowledgeBlob
}

// NewLoader builds a loader over the configured document directory.
func NewLoader(cfg config.KnowledgeConfig, pdfExtract PDFExtractor, logger *zap.Logger) *Loader {
	return &Loader{dir: cfg.Dir, pdfExtract: pdfExtract, logger: logger}
}

// Load returns the cached blob, scanning the directory on the first call.
// Individual unreadable files are skipped; the blob holds whatever succeeded.
func (l *Loader) Load() domain.KnowledgeBlob {
	l.once.Do(func() {
		l.blob = l.scan()
	})
	return l.blob
}

func (l *Loader) scan() domain.KnowledgeBlob {
	var blob domain.KnowledgeBlob

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		l.logger.Warn("knowledge directory unreadable", zap.String("dir", l.dir), zap.Error(err))
		return blob
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(l.dir, name)

		text, kind, ok := l.readFile(name, path)
		if !ok {
			continue
		}

		switch kind {
		case kindOrgChart:
			blob.OrgChart = join(blob.OrgChart, text)
		case kindIntranet:
			blob.IntranetGuide = join(blob.IntranetGuide, text)
		case kindPolicy:
			blob.PolicyText = join(blob.PolicyText, text)
		case kindGeneral:
			blob.General = join(blob.General, text)
		}
	}

	l.logger.Info("knowledge loaded",
		zap.String("dir", l.dir),
		zap.Int("org_chart_bytes", len(blob.OrgChart)),
		zap.Int("intranet_bytes", len(blob.IntranetGuide)),
		zap.Int("policy_bytes", len(blob.PolicyText)),
		zap.Int("general_bytes", len(blob.General)),
	)
	return blob
}

type docKind int

const (
	kindSkip docKind = iota
	kindOrgChart
	kindIntranet
	kindPolicy
	kindGeneral
)

func (l *Loader) readFile(name, path string) (string, docKind, bool) {
	kind := classify(name)
	if kind == kindSkip {
		return "", kindSkip, false
	}

	if kind == kindPolicy {
		if l.pdfExtract == nil {
			l.logger.Debug("no pdf extractor registered, skipping", zap.String("file", name))
			return "", kindSkip, false
		}
		text, err := l.pdfExtract(path)
		if err != nil {
			l.logger.Warn("pdf extraction failed, skipping", zap.String("file", name), zap.Error(err))
			return "", kindSkip, false
		}
		return text, kind, true
	}

	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Warn("knowledge file unreadable, skipping", zap.String("file", name), zap.Error(err))
		return "", kindSkip, false
	}
	return string(data), kind, true
}

// classify applies the filename heuristics: org-chart markers win over the
// intranet marker, PDFs carry policy text, remaining text files are general
// reference. Anything else is ignored.
func classify(name string) docKind {
	lower := strings.ToLower(name)
	ext := filepath.Ext(lower)

	if ext == ".pdf" {
		return kindPolicy
	}
	if !isTextExt(ext) {
		return kindSkip
	}
	if strings.Contains(lower, "org") || strings.Contains(name, "조직") {
		return kindOrgChart
	}
	if strings.Contains(lower, "intranet") || strings.Contains(name, "인트라넷") {
		return kindIntranet
	}
	return kindGeneral
}

func isTextExt(ext string) bool {
	switch ext {
	case ".txt", ".md", ".csv":
		return true
	}
	return false
}

func join(existing, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return existing
	}
	if existing == "" {
		return text
	}
	return existing + "\n\n" + text
}
