package knowledge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hrdesk/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad_ClassifiesByFilename(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "org_chart.txt", "CEO - CTO - Staff")
	writeFile(t, dir, "intranet_guide.md", "포털 사용법")
	writeFile(t, dir, "휴가규정.txt", "연차는 15일")

	loader := NewLoader(config.KnowledgeConfig{Dir: dir}, nil, zap.NewNop())
	blob := loader.Load()

	assert.Equal(t, "CEO - CTO - Staff", blob.OrgChart)
	assert.Equal(t, "포털 사용법", blob.IntranetGuide)
	assert.Equal(t, "연차는 15일", blob.General)
}

func TestLoad_PDFUsesExtractor(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "policy.pdf", "%PDF-1.4 binary")

	extract := func(path string) (string, error) {
		return "출장 규정 본문", nil
	}
	loader := NewLoader(config.KnowledgeConfig{Dir: dir}, extract, zap.NewNop())
	blob := loader.Load()

	assert.Equal(t, "출장 규정 본문", blob.PolicyText)
}

func TestLoad_PDFSkippedWithoutExtractor(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "policy.pdf", "%PDF-1.4 binary")

	loader := NewLoader(config.KnowledgeConfig{Dir: dir}, nil, zap.NewNop())
	blob := loader.Load()

	assert.Empty(t, blob.PolicyText)
}

func TestLoad_ExtractionFailureSkipsOnlyThatFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.pdf", "%PDF-1.4 binary")
	writeFile(t, dir, "org.txt", "조직도 내용")

	extract := func(path string) (string, error) {
		return "", errors.New("corrupt pdf")
	}
	loader := NewLoader(config.KnowledgeConfig{Dir: dir}, extract, zap.NewNop())
	blob := loader.Load()

	assert.Empty(t, blob.PolicyText)
	assert.Equal(t, "조직도 내용", blob.OrgChart)
}

func TestLoad_IgnoresUnknownExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "photo.png", "not text")

	loader := NewLoader(config.KnowledgeConfig{Dir: dir}, nil, zap.NewNop())
	blob := loader.Load()

	assert.True(t, blob.Empty())
}

func TestLoad_MissingDirectoryYieldsEmptyBlob(t *testing.T) {
	loader := NewLoader(config.KnowledgeConfig{Dir: "/nonexistent/dir"}, nil, zap.NewNop())
	blob := loader.Load()

	assert.True(t, blob.Empty())
}

func TestLoad_CachesFirstScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "org.txt", "v1")

	loader := NewLoader(config.KnowledgeConfig{Dir: dir}, nil, zap.NewNop())
	first := loader.Load()

	writeFile(t, dir, "org.txt", "v2")
	second := loader.Load()

	assert.Equal(t, first.OrgChart, second.OrgChart)
	assert.Equal(t, "v1", second.OrgChart)
}
