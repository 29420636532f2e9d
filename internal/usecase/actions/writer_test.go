package actions

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
	"github.com/johnquangdev/client-meetings/internal/infrastructure/storage"
	"github.com/johnquangdev/client-meetings/pkg/config"
)

func TestResolveClientFolder(t *testing.T) {
	folders := config.DefaultClientFolders()

	assert.Equal(t, "rebecca-flemming", ResolveClientFolder(folders, "1"))
	assert.Equal(t, "james-harrington", ResolveClientFolder(folders, "2"))

	first := ResolveClientFolder(folders, "New  Client\tX")
	second := ResolveClientFolder(folders, "New  Client\tX")
	assert.Equal(t, "new-client-x", first)
	assert.Equal(t, first, second)

	tests := []struct {
		id   string
		want string
	}{
		{"acme/ltd", "acme-ltd"},
		{`acme\ltd`, "acme-ltd"},
		{"../2", "2"},
		{"..", unknownClientFolder},
		{"  Smith & Co.  ", "smith-co"},
		{"Zoë", "zo"},
	}
	for _, tt := range tests {
		got := ResolveClientFolder(folders, tt.id)
		assert.Equal(t, tt.want, got, tt.id)
		assert.NotContains(t, got, "/")
		assert.NotContains(t, got, ".")
	}
}

func TestStamp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-05T14:30:00Z", "20240305_143000"},
		{"2024-03-05T14:30:00.123Z", "20240305_143000"},
		{"2024-03-05T15:30:00+01:00", "20240305_143000"},
		{"2024-03-05", "20240305_000000"},
		{"not a date at all, really", "notadateatallre"},
		{"éééééééééé12345678901234567890", "123456789012345"},
		{"März 5th, 2024 at 3pm", "Mrz5th2024at3pm"},
	}
	for _, tt := range tests {
		got := Stamp(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.LessOrEqual(t, len(got), 15)
		assert.True(t, utf8.ValidString(got), tt.in)
	}
}

func TestMeetingFolder(t *testing.T) {
	tests := []struct {
		meetingType string
		want        string
	}{
		{"Annual Review", "20240305_143000-annual-review"},
		{"x/../../james-harrington/20240101_000000-discovery", "20240305_143000-x-james-harrington-20240101-000000-discovery"},
		{`..\..`, "20240305_143000-meeting"},
		{"", "20240305_143000-meeting"},
	}
	for _, tt := range tests {
		got := MeetingFolder("2024-03-05T14:30:00Z", tt.meetingType)
		assert.Equal(t, tt.want, got, tt.meetingType)
		assert.NotContains(t, got, "/")
	}
}

func TestMeetingDirStaysUnderClientFolder(t *testing.T) {
	folders := config.DefaultClientFolders()

	dir := MeetingDir(folders, "1", "2024-03-05T14:30:00Z", "x/../../james-harrington/20240101_000000-discovery")
	assert.True(t, strings.HasPrefix(dir, "rebecca-flemming/"), dir)
	assert.Equal(t, 1, strings.Count(dir, "/"))

	dir = MeetingDir(folders, "acme/ltd", "2024-03-05", "review")
	assert.Equal(t, "acme-ltd/20240305_000000-review", dir)
}

func readActions(t *testing.T, file string) entities.ActionItemFile {
	t.Helper()
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \""), "expected two-space indentation")

	var f entities.ActionItemFile
	require.NoError(t, json.Unmarshal(data, &f))
	return f
}

func TestWriterSave(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(storage.NewLocalStore(root), config.DefaultClientFolders(), zaptest.NewLogger(t))
	m := Meeting{ClientID: "1", ID: "m-1", Date: "2024-03-05T14:30:00Z", Type: "discovery"}

	res, err := w.Save(context.Background(), m, []string{"send payslips", "sign form", "call HR"}, []string{"draft plan", "book review"})
	require.NoError(t, err)

	dir := filepath.Join(root, "rebecca-flemming", "20240305_143000-discovery")
	assert.Equal(t, "rebecca-flemming/20240305_143000-discovery", res.Dir)

	check := func(name string, want int) {
		f := readActions(t, filepath.Join(dir, name))
		assert.Equal(t, "1", f.ClientID)
		assert.Equal(t, "m-1", f.MeetingID)
		assert.Equal(t, m.Date, f.MeetingDate)
		require.Len(t, f.Actions, want)

		seen := map[string]bool{}
		for _, a := range f.Actions {
			assert.NotEmpty(t, a.ID)
			assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
			seen[a.ID] = true
			assert.Equal(t, entities.ActionItemStatusPending, a.Status)
			assert.Equal(t, "m-1", a.MeetingID)
			assert.Equal(t, m.Date, a.MeetingDate)
		}
	}
	check(ClientActionsFile, 3)
	check(AdviserActionsFile, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWriterSaveEmptyLists(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(storage.NewLocalStore(root), nil, nil)
	m := Meeting{ClientID: "2", ID: "m-2", Date: "2024-01-01T09:00:00Z", Type: "regular"}

	_, err := w.Save(context.Background(), m, nil, nil)
	require.NoError(t, err)

	f := readActions(t, filepath.Join(root, "james-harrington", "20240101_090000-regular", ClientActionsFile))
	assert.NotNil(t, f.Actions)
	assert.Empty(t, f.Actions)
}

type failingStore struct {
	storage.JSONStore
	fail map[string]bool
}

func (s failingStore) WriteJSON(ctx context.Context, relPath string, v interface{}) error {
	if s.fail[filepath.Base(relPath)] {
		return errors.New("disk full")
	}
	return s.JSONStore.WriteJSON(ctx, relPath, v)
}

func TestWriterSaveReportsEveryFailedFile(t *testing.T) {
	root := t.TempDir()
	store := failingStore{JSONStore: storage.NewLocalStore(root), fail: map[string]bool{ClientActionsFile: true, AdviserActionsFile: true}}
	w := NewWriter(store, nil, zaptest.NewLogger(t))

	_, err := w.Save(context.Background(), Meeting{ClientID: "1", ID: "m", Date: "2024-01-01", Type: "x"}, []string{"a"}, []string{"b"})
	require.Error(t, err)

	var se *SaveError
	require.True(t, errors.As(err, &se))
	assert.ElementsMatch(t, []string{ClientActionsFile, AdviserActionsFile}, se.Failed)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriterSaveAttemptsBothFiles(t *testing.T) {
	root := t.TempDir()
	store := failingStore{JSONStore: storage.NewLocalStore(root), fail: map[string]bool{ClientActionsFile: true}}
	w := NewWriter(store, nil, nil)
	m := Meeting{ClientID: "1", ID: "m", Date: "2024-01-01", Type: "x"}

	_, err := w.Save(context.Background(), m, []string{"a"}, []string{"b"})
	var se *SaveError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, []string{ClientActionsFile}, se.Failed)

	_, statErr := os.Stat(filepath.Join(root, w.Dir(m), AdviserActionsFile))
	assert.NoError(t, statErr)
}

func TestWriterReportRoundTrip(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(storage.NewLocalStore(root), nil, nil)
	fixed := time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return fixed }
	m := Meeting{ClientID: "1", ID: "m-9", Date: "2024-03-05T14:30:00Z", Type: "Discovery"}

	_, err := w.LoadReport(context.Background(), m)
	assert.ErrorIs(t, err, entities.ErrReportNotFound)

	report := &entities.DiscoveryReport{RiskTolerance: "r", FactFind: "f", CapacityForLoss: "c", FinancialObjectives: "o"}
	_, err = w.SaveReport(context.Background(), m, report)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "rebecca-flemming", "20240305_143000-discovery", DiscoveryReportFile))

	got, err := w.LoadReport(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, *report, got.Report)
	assert.Equal(t, fixed, got.GeneratedAt)
	assert.Equal(t, "m-9", got.MeetingID)

	other := m
	other.ID = "m-10"
	_, err = w.LoadReport(context.Background(), other)
	assert.ErrorIs(t, err, entities.ErrReportNotFound)
}
