package directory

import (
	"math/rand"
	"testing"

	"github.com/dmitrijs2005/qrcontacts/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var sample = []models.Entry{
	{Name: "Bob", Mobile: "222", QR: "5"},
	{Name: "Amy", Mobile: "111", QR: "5"},
	{Name: "Zoe", Mobile: "333"},
}

func TestAggregate_GroupsAndSorts(t *testing.T) {
	got := Aggregate(sample, "", models.NoQR)

	want := []Group{
		{Key: "5", Color: 5, Entries: []models.Entry{
			{Name: "Amy", Mobile: "111", QR: "5"},
			{Name: "Bob", Mobile: "222", QR: "5"},
		}},
		{Key: UngroupedKey, Ungrouped: true, Color: colorOf(UngroupedKey), Entries: []models.Entry{
			{Name: "Zoe", Mobile: "333"},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_QueryMatchesMobile(t *testing.T) {
	got := Aggregate(sample, "22", models.NoQR)

	want := []Group{
		{Key: "5", Color: 5, Entries: []models.Entry{{Name: "Bob", Mobile: "222", QR: "5"}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_QueryIsCaseInsensitive(t *testing.T) {
	got := Flatten(Aggregate(sample, "aMY", models.NoQR))
	require.Equal(t, []models.Entry{{Name: "Amy", Mobile: "111", QR: "5"}}, got)

	require.Empty(t, Aggregate(sample, "nobody", models.NoQR))
	require.Empty(t, Aggregate(nil, "", models.NoQR))
}

func TestAggregate_GroupFilter(t *testing.T) {
	entries := []models.Entry{
		{Name: "A", Mobile: "1", QR: "5"},
		{Name: "B", Mobile: "2", QR: "05"},
		{Name: "C", Mobile: "3", QR: "6"},
		{Name: "D", Mobile: "4"},
		{Name: "E", Mobile: "5", QR: "x"},
	}

	got := Flatten(Aggregate(entries, "", "5"))
	require.Equal(t, []string{"A", "B"}, names(got))

	got = Flatten(Aggregate(entries, "", "x"))
	require.Equal(t, []string{"E"}, names(got))

	require.Empty(t, Aggregate(entries, "", "99"))
}

func TestAggregate_GroupOrder(t *testing.T) {
	entries := []models.Entry{
		{Name: "n", Mobile: "1"},
		{Name: "a", Mobile: "1", QR: "beta"},
		{Name: "b", Mobile: "1", QR: "10"},
		{Name: "c", Mobile: "1", QR: "alpha"},
		{Name: "d", Mobile: "1", QR: "2"},
		{Name: "e", Mobile: "1", QR: "-4"},
		{Name: "f", Mobile: "1", QR: "02"},
	}

	var keys []string
	for _, g := range Aggregate(entries, "", models.NoQR) {
		keys = append(keys, g.Key)
	}
	require.Equal(t, []string{"-4", "02", "2", "10", "alpha", "beta", UngroupedKey}, keys)
}

func TestAggregate_MemberOrderUsesCollation(t *testing.T) {
	entries := []models.Entry{
		{Name: "bob", Mobile: "2", QR: "1"},
		{Name: "Émile", Mobile: "3", QR: "1"},
		{Name: "Bob", Mobile: "1", QR: "1"},
		{Name: "alice", Mobile: "4", QR: "1"},
		{Name: "Bob", Mobile: "0", QR: "1"},
	}

	got := Aggregate(entries, "", models.NoQR)
	require.Len(t, got, 1)
	require.Equal(t, []models.Entry{
		{Name: "alice", Mobile: "4", QR: "1"},
		{Name: "Bob", Mobile: "0", QR: "1"},
		{Name: "Bob", Mobile: "1", QR: "1"},
		{Name: "bob", Mobile: "2", QR: "1"},
		{Name: "Émile", Mobile: "3", QR: "1"},
	}, got[0].Entries)
}

func TestColorOf(t *testing.T) {
	require.Equal(t, 5, colorOf("5"))
	require.Equal(t, 2, colorOf("12"))
	require.Equal(t, 7, colorOf("-3"))
	require.Equal(t, 0, colorOf("99999999999999999999"))
	require.Equal(t, 8, colorOf("9223372036854775807")) // 2^63 as float64
	// 'a'+'b' = 97+98 = 195
	require.Equal(t, 5, colorOf("ab"))
	// U+1F600 is two UTF-16 code units: 0xD83D + 0xDE00 = 55357 + 56832
	require.Equal(t, (55357+56832)%PaletteSize, colorOf("\U0001F600"))

	for _, g := range Aggregate(sample, "", models.NoQR) {
		require.GreaterOrEqual(t, g.Color, 0)
		require.Less(t, g.Color, PaletteSize)
	}
}

func TestAggregate_PreservesCount(t *testing.T) {
	entries := randomEntries(rand.New(rand.NewSource(1)), 200)

	got := Flatten(Aggregate(entries, "", models.NoQR))
	require.Len(t, got, len(entries))
}

func TestAggregate_OrderIndependentAndIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	entries := randomEntries(r, 120)
	want := Aggregate(entries, "1", models.NoQR)

	for i := 0; i < 5; i++ {
		shuffled := append([]models.Entry(nil), entries...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		if diff := cmp.Diff(want, Aggregate(shuffled, "1", models.NoQR)); diff != "" {
			t.Fatalf("shuffle %d changed result (-want +got):\n%s", i, diff)
		}
	}

	again := Aggregate(Flatten(want), "1", models.NoQR)
	if diff := cmp.Diff(want, again); diff != "" {
		t.Fatalf("not idempotent (-want +got):\n%s", diff)
	}
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	in := append([]models.Entry(nil), sample...)
	_ = Aggregate(in, "", models.NoQR)
	require.Equal(t, sample, in)
}

func names(es []models.Entry) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Name)
	}
	return out
}

func randomEntries(r *rand.Rand, n int) []models.Entry {
	firsts := []string{"ann", "Ann", "bob", "Émile", "zoe", "Kim", "lee"}
	qrs := []models.QR{models.NoQR, "1", "2", "02", "10", "x", "y"}
	out := make([]models.Entry, n)
	for i := range out {
		out[i] = models.Entry{
			Name:   firsts[r.Intn(len(firsts))],
			Mobile: string(rune('0'+r.Intn(10))) + string(rune('0'+r.Intn(10))),
			QR:     qrs[r.Intn(len(qrs))],
		}
	}
	return out
}
