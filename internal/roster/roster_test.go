package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hrdesk/internal/config"
	"github.com/spec-kit/hrdesk/internal/domain"
)

func testConfig() config.RosterConfig {
	return config.RosterConfig{
		Path:             "unused",
		OverridePassword: "0416",
		OverrideAccounts: []string{"관리자"},
	}
}

func loadFrom(t *testing.T, csvData string) *Store {
	t.Helper()
	store, err := parse(strings.NewReader(csvData), testConfig(), 4, zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestDerivePassword(t *testing.T) {
	assert.Equal(t, "5678", domain.DerivePassword("010-1234-5678"))
	assert.Equal(t, "5678", domain.DerivePassword("01012345678"))
	assert.Equal(t, "1234", domain.DerivePassword("010-0000-1234"))
	assert.Equal(t, "0000", domain.DerivePassword("12"))
	assert.Equal(t, "0000", domain.DerivePassword("no digits here"))
	assert.Equal(t, "0000", domain.DerivePassword(""))
}

func TestAuthenticate_Success(t *testing.T) {
	store := loadFrom(t, "name,department,rank,phone\nKim,총무팀,대리,010-0000-1234\n")

	emp, err := store.Authenticate("Kim", "1234")
	require.NoError(t, err)
	assert.Equal(t, "총무팀", emp.Department)
	assert.Equal(t, "대리", emp.Rank)
}

func TestAuthenticate_TrimsName(t *testing.T) {
	store := loadFrom(t, "Kim,총무팀,대리,010-0000-1234\n")

	_, err := store.Authenticate("  Kim  ", "1234")
	assert.NoError(t, err)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	store := loadFrom(t, "Kim,총무팀,대리,010-0000-1234\n")

	_, err := store.Authenticate("Kim", "1235")
	assert.Error(t, err)
}

func TestAuthenticate_SingleCharacterMutationsFail(t *testing.T) {
	store := loadFrom(t, "Kim,총무팀,대리,010-0000-1234\n")

	for _, pw := range []string{"0234", "1134", "1224", "1233", "123", "12345"} {
		_, err := store.Authenticate("Kim", pw)
		assert.Error(t, err, "password %q should be rejected", pw)
	}
}

func TestAuthenticate_UnknownName(t *testing.T) {
	store := loadFrom(t, "Kim,총무팀,대리,010-0000-1234\n")

	_, err := store.Authenticate("Ghost", "whatever")
	assert.Error(t, err)
}

func TestAuthenticate_UnknownNameAndWrongPasswordIndistinguishable(t *testing.T) {
	store := loadFrom(t, "Kim,총무팀,대리,010-0000-1234\n")

	_, errUnknown := store.Authenticate("Ghost", "1234")
	_, errWrong := store.Authenticate("Kim", "9999")
	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestLoad_SkipsMalformedRows(t *testing.T) {
	csvData := "name,department,rank,phone\n" +
		"Kim,총무팀,대리,010-0000-1234\n" +
		"BrokenRow\n" +
		",인사팀,과장,010-1111-2222\n" +
		"Lee,인사팀,과장,010-1111-2222\n"
	store := loadFrom(t, csvData)

	// Kim, Lee, plus the 관리자 fallback account.
	assert.Equal(t, 3, store.Len())
	_, err := store.Authenticate("Lee", "2222")
	assert.NoError(t, err)
}

func TestLoad_OverrideAccountPassword(t *testing.T) {
	store := loadFrom(t, "관리자,경영지원,관리자,010-9999-8888\n")

	// The derived password is replaced by the fixed override.
	_, err := store.Authenticate("관리자", "8888")
	assert.Error(t, err)
	_, err = store.Authenticate("관리자", "0416")
	assert.NoError(t, err)
}

func TestLoad_FallbackAccountWithoutRosterRow(t *testing.T) {
	store := loadFrom(t, "Kim,총무팀,대리,010-0000-1234\n")

	emp, err := store.Authenticate("관리자", "0416")
	require.NoError(t, err)
	assert.Equal(t, "관리자", emp.Rank)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,department,rank,phone\nKim,총무팀,대리,010-0000-1234\n"), 0o644))

	cfg := testConfig()
	cfg.Path = path
	store, err := Load(cfg, 4, zap.NewNop())
	require.NoError(t, err)

	_, err = store.Authenticate("Kim", "1234")
	assert.NoError(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg := testConfig()
	cfg.Path = "/nonexistent/roster.csv"

	_, err := Load(cfg, 4, zap.NewNop())
	assert.Error(t, err)
}

func TestLoad_ShortPhoneUsesFallbackPassword(t *testing.T) {
	store := loadFrom(t, "Park,재무팀,사원,12\n")

	_, err := store.Authenticate("Park", domain.FallbackPassword)
	assert.NoError(t, err)
}
