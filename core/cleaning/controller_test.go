package cleaning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStore is an in-memory AliasStore recording every write.
type fakeStore struct {
	sizes          []KnownValue
	sizeAliases    []Alias
	productAliases []Alias
	productNames   []string

	createdSizes          []string
	createdSizeAliases    []Alias
	createdProductAliases []Alias

	loads   int
	failAll bool
}

var errStoreDown = errors.New("store unavailable")

func (f *fakeStore) LoadSizes(ctx context.Context) ([]KnownValue, error) {
	f.loads++
	if f.failAll {
		return nil, errStoreDown
	}
	return f.sizes, nil
}

func (f *fakeStore) LoadSizeAliases(ctx context.Context) ([]Alias, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	return f.sizeAliases, nil
}

func (f *fakeStore) LoadProductAliases(ctx context.Context) ([]Alias, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	return f.productAliases, nil
}

func (f *fakeStore) LoadProductNames(ctx context.Context) ([]string, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	return f.productNames, nil
}

func (f *fakeStore) CreateSize(ctx context.Context, label string) error {
	if f.failAll {
		return errStoreDown
	}
	f.createdSizes = append(f.createdSizes, label)
	return nil
}

func (f *fakeStore) CreateSizeAlias(ctx context.Context, aliasText, mappedSize string) error {
	if f.failAll {
		return errStoreDown
	}
	f.createdSizeAliases = append(f.createdSizeAliases, Alias{Text: aliasText, Mapped: mappedSize})
	return nil
}

func (f *fakeStore) CreateProductAlias(ctx context.Context, aliasText, mappedProductName string) error {
	if f.failAll {
		return errStoreDown
	}
	f.createdProductAliases = append(f.createdProductAliases, Alias{Text: aliasText, Mapped: mappedProductName})
	return nil
}

func (f *fakeStore) SearchProductNames(ctx context.Context, query string) ([]string, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	return f.productNames, nil
}

func newTestController(t *testing.T, sheet SheetData, dict *Dictionary, store *fakeStore) *Controller {
	t.Helper()
	s, err := NewSession("test", sheet)
	require.NoError(t, err)
	if dict == nil {
		dict = NewDictionary()
	}
	s.Dict = dict
	return NewController(s, store, zap.NewNop())
}

func TestEditRow(t *testing.T) {
	store := &fakeStore{}
	dict := BuildDictionary([]KnownValue{{Label: "2x2"}}, nil, nil, nil)
	c := newTestController(t, testSheet(), dict, store)
	require.NoError(t, c.Session().AssignColumn(ModeSize, "Size"))

	require.NoError(t, c.EditRow(ModeSize, "1", "2x2"))
	res := c.Session().Rows[1].Result(ModeSize)
	assert.Equal(t, "2x2", res.ExtractedValue)
	assert.True(t, res.ManualOverride)
	assert.Equal(t, StatusMatched, res.Status)

	require.NoError(t, c.EditRow(ModeSize, "1", "3x6"))
	assert.Equal(t, StatusNew, c.Session().Rows[1].Result(ModeSize).Status)

	require.NoError(t, c.EditRow(ModeSize, "1", "  "))
	assert.Equal(t, StatusUnknown, c.Session().Rows[1].Result(ModeSize).Status)
}

func TestEditRow_Errors(t *testing.T) {
	c := newTestController(t, testSheet(), nil, &fakeStore{})
	assert.ErrorIs(t, c.EditRow(ModeSize, "0", "x"), ErrNoColumnAssigned)

	require.NoError(t, c.Session().AssignColumn(ModeSize, "Size"))
	assert.ErrorIs(t, c.EditRow(ModeSize, "99", "x"), ErrRowNotFound)
}

func TestSelectSpan(t *testing.T) {
	c := newTestController(t, testSheet(), nil, &fakeStore{})
	require.NoError(t, c.Session().AssignColumn(ModeName, "Description"))

	require.NoError(t, c.SelectSpan(ModeName, "1", "M122 Tile"))
	res := c.Session().Rows[1].Result(ModeName)
	assert.Equal(t, "M122 Tile", res.ExtractedValue)
	assert.Equal(t, "M122 Tile", res.SelectionSource)
	assert.True(t, res.ManualOverride)
	assert.Equal(t, StatusNew, res.Status)
}

func TestSelectSpan_PriceUnsupported(t *testing.T) {
	c := newTestController(t, testSheet(), nil, &fakeStore{})
	require.NoError(t, c.Session().AssignColumn(ModePrice, "Price"))
	assert.ErrorIs(t, c.SelectSpan(ModePrice, "0", "4.99"), ErrModeUnsupported)
}

func TestPromote_Eligibility(t *testing.T) {
	store := &fakeStore{}
	dict := BuildDictionary([]KnownValue{{Label: `12"x24"`}}, nil, nil, nil)
	c := newTestController(t, testSheet(), dict, store)
	require.NoError(t, c.Session().AssignColumn(ModeSize, "Size"))

	// Row 0 matched automatically: not promotable.
	assert.ErrorIs(t, c.Promote(context.Background(), ModeSize, "0"), ErrNotPromotable)

	// Price mode never promotes.
	require.NoError(t, c.Session().AssignColumn(ModePrice, "Price"))
	assert.ErrorIs(t, c.Promote(context.Background(), ModePrice, "1"), ErrModeUnsupported)
}

func TestPromoteSize_RescanBreadth(t *testing.T) {
	sheet := SheetData{
		Headers: []string{"Size"},
		Rows: []map[string]string{
			{"Size": "M122"},
			{"Size": "M122 Tile Sample"},
			{"Size": "Sample M122-B"},
			{"Size": "unrelated"},
			{"Size": ""},
		},
	}
	store := &fakeStore{}
	c := newTestController(t, sheet, nil, store)
	require.NoError(t, c.Session().AssignColumn(ModeSize, "Size"))

	// Operator highlights "M122" on row 0, then types the canonical value.
	require.NoError(t, c.SelectSpan(ModeSize, "0", "M122"))
	require.NoError(t, c.EditRow(ModeSize, "0", "2x2"))
	require.NoError(t, c.Promote(context.Background(), ModeSize, "0"))

	s := c.Session()
	assert.Equal(t, StatusMatched, s.Rows[0].Result(ModeSize).Status)
	assert.Equal(t, "2x2", s.Rows[0].Result(ModeSize).ExtractedValue)

	// Every other row containing "M122" anywhere in its raw text resolves in
	// the same operation, not just rows with identical raw text.
	for _, id := range []int{1, 2} {
		res := s.Rows[id].Result(ModeSize)
		assert.Equal(t, StatusMatched, res.Status, "row %d", id)
		assert.Equal(t, "2x2", res.ExtractedValue, "row %d", id)
	}

	assert.Equal(t, StatusNew, s.Rows[3].Result(ModeSize).Status)
	assert.Equal(t, StatusUnknown, s.Rows[4].Result(ModeSize).Status)

	// The rule was mirrored to the store: new label plus the alias edge.
	assert.Equal(t, []string{"2x2"}, store.createdSizes)
	assert.Equal(t, []Alias{{Text: "M122", Mapped: "2x2"}}, store.createdSizeAliases)

	// The in-memory dictionary carries the rule for the rest of the session.
	kv := s.Dict.FindSize("2x2")
	require.NotNil(t, kv)
	assert.Equal(t, []string{"M122"}, kv.Matchers)
}

func TestPromoteSize_DimensionPatternUpgrade(t *testing.T) {
	sheet := SheetData{
		Headers: []string{"Size"},
		Rows: []map[string]string{
			{"Size": "12 x 24"},
			{"Size": ""},
			{"Size": "012x240"},
		},
	}
	// Row 1's raw text is empty and row 2 never matches; seed row 1 with raw
	// text carrying the dimension pair via a second sheet column instead.
	sheet.Rows[1]["Size"] = "tile 12x24 gloss"
	c := newTestController(t, sheet, nil, &fakeStore{})
	require.NoError(t, c.Session().AssignColumn(ModeSize, "Size"))

	// Row 1 extracts "tile 12x24 gloss" as NEW; force it back to unknown to
	// exercise the unresolved-row re-test.
	res := c.Session().Rows[1].Result(ModeSize)
	res.ExtractedValue = ""
	res.Status = StatusUnknown

	require.NoError(t, c.Promote(context.Background(), ModeSize, "0"))

	assert.Equal(t, StatusMatched, c.Session().Rows[0].Result(ModeSize).Status)
	assert.Equal(t, `12"x24"`, c.Session().Rows[1].Result(ModeSize).ExtractedValue)
	assert.Equal(t, StatusMatched, c.Session().Rows[1].Result(ModeSize).Status)
	assert.Equal(t, StatusNew, c.Session().Rows[2].Result(ModeSize).Status)
}

func TestPromoteSize_DoesNotReclassifyResolvedRows(t *testing.T) {
	sheet := SheetData{
		Headers: []string{"Size"},
		Rows: []map[string]string{
			{"Size": "M122"},
			{"Size": "3x6"},
		},
	}
	dict := BuildDictionary([]KnownValue{{Label: "3x6", Matchers: []string{"M122"}}}, nil, nil, nil)
	c := newTestController(t, sheet, dict, &fakeStore{})
	require.NoError(t, c.Session().AssignColumn(ModeSize, "Size"))
	require.Equal(t, StatusMatched, c.Session().Rows[0].Result(ModeSize).Status)

	// Operator overrides row 0 to a different label and promotes it. Row 1
	// stays matched to its original label: first match wins.
	require.NoError(t, c.EditRow(ModeSize, "0", "2x2"))
	require.NoError(t, c.Promote(context.Background(), ModeSize, "0"))

	assert.Equal(t, "3x6", c.Session().Rows[1].Result(ModeSize).ExtractedValue)
	assert.Equal(t, StatusMatched, c.Session().Rows[1].Result(ModeSize).Status)
}

func TestPromoteName_ExactGrouping(t *testing.T) {
	sheet := SheetData{
		Headers: []string{"Description"},
		Rows: []map[string]string{
			{"Description": "COR-PRO-OAK-5IN"},
			{"Description": "COR-PRO-OAK-5IN"},
			{"Description": "cor-pro-oak-5in"},
			{"Description": "COR-PRO-OAK-7IN"},
		},
	}
	store := &fakeStore{}
	c := newTestController(t, sheet, nil, store)
	require.NoError(t, c.Session().AssignColumn(ModeName, "Description"))

	require.NoError(t, c.EditRow(ModeName, "0", "Coretec Pro Oak 5in"))
	require.NoError(t, c.Promote(context.Background(), ModeName, "0"))

	s := c.Session()
	for _, id := range []int{0, 1} {
		res := s.Rows[id].Result(ModeName)
		assert.Equal(t, StatusMatched, res.Status, "row %d", id)
		assert.Equal(t, "Coretec Pro Oak 5in", res.ExtractedValue, "row %d", id)
	}

	// Grouping is exact and case-sensitive on the raw text.
	assert.Equal(t, StatusNew, s.Rows[2].Result(ModeName).Status)
	assert.Equal(t, StatusNew, s.Rows[3].Result(ModeName).Status)

	assert.Equal(t, []Alias{{Text: "COR-PRO-OAK-5IN", Mapped: "Coretec Pro Oak 5in"}}, store.createdProductAliases)
}

func TestPromote_StoreFailureIsNonFatal(t *testing.T) {
	sheet := SheetData{
		Headers: []string{"Size"},
		Rows:    []map[string]string{{"Size": "M122"}, {"Size": "x M122 y"}},
	}
	store := &fakeStore{failAll: true}
	c := newTestController(t, sheet, nil, store)
	require.NoError(t, c.Session().AssignColumn(ModeSize, "Size"))

	require.NoError(t, c.SelectSpan(ModeSize, "0", "M122"))
	require.NoError(t, c.EditRow(ModeSize, "0", "2x2"))
	require.NoError(t, c.Promote(context.Background(), ModeSize, "0"))

	s := c.Session()
	// Local state still updated: the session stays usable.
	assert.Equal(t, StatusMatched, s.Rows[0].Result(ModeSize).Status)
	assert.Equal(t, StatusMatched, s.Rows[1].Result(ModeSize).Status)
	assert.True(t, s.Dict.HasSizeLabel("2x2"))
	assert.NotEmpty(t, s.Warnings)
}

func TestPromoteSize_RetryPersistsAfterStoreRecovery(t *testing.T) {
	sheet := SheetData{
		Headers: []string{"Size"},
		Rows:    []map[string]string{{"Size": "M122"}},
	}
	store := &fakeStore{failAll: true}
	c := newTestController(t, sheet, nil, store)
	require.NoError(t, c.Session().AssignColumn(ModeSize, "Size"))

	require.NoError(t, c.SelectSpan(ModeSize, "0", "M122"))
	require.NoError(t, c.EditRow(ModeSize, "0", "2x2"))
	require.NoError(t, c.Promote(context.Background(), ModeSize, "0"))

	// First attempt persisted nothing; the rule is only local.
	assert.Empty(t, store.createdSizes)
	assert.Empty(t, store.createdSizeAliases)
	assert.NotEmpty(t, c.Session().Warnings)

	// The label now exists in the in-memory dictionary. Promoting again after
	// the store recovers must still write both the label and the alias edge.
	store.failAll = false
	require.NoError(t, c.Promote(context.Background(), ModeSize, "0"))

	assert.Equal(t, []string{"2x2"}, store.createdSizes)
	assert.Equal(t, []Alias{{Text: "M122", Mapped: "2x2"}}, store.createdSizeAliases)
}

func TestPromote_EmptyLabelIsNoOp(t *testing.T) {
	c := newTestController(t, testSheet(), nil, &fakeStore{})
	require.NoError(t, c.Session().AssignColumn(ModeName, "Description"))

	res := c.Session().Rows[0].Result(ModeName)
	res.ExtractedValue = "   "
	res.Status = StatusNew

	require.NoError(t, c.Promote(context.Background(), ModeName, "0"))
	assert.Equal(t, 0, c.Session().Dict.Version)
}
