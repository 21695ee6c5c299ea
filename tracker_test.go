package depot

import "testing"

func TestChangeTrackerBackfillsExistingRows(t *testing.T) {
	tr := newChangeTracker(3, 5)
	for i := 0; i < 3; i++ {
		if !tr.Modified(i) {
			t.Fatalf("row %d should read as modified immediately after enabling tracking (modified == lastRead == 0 initially is wrong; backfilled to enable tick)", i)
		}
	}
	tr.onQuerySync(6)
	for i := 0; i < 3; i++ {
		if tr.Modified(i) {
			t.Fatalf("row %d should read as unmodified right after a sync at a tick later than the one it was backfilled to", i)
		}
	}
}

func TestChangeTrackerFlagModified(t *testing.T) {
	tr := newChangeTracker(2, 0)
	tr.onQuerySync(1)

	if tr.Modified(0) || tr.Modified(1) {
		t.Fatalf("rows should read unmodified once last_read has moved past the backfilled tick")
	}

	tr.FlagModified(0, 1)
	if !tr.Modified(0) {
		t.Fatalf("row 0 should read modified after being flagged at a tick at or after last_read")
	}
	if tr.Modified(1) {
		t.Fatalf("row 1 was never flagged and should still read unmodified")
	}
}

func TestChangeTrackerSwapRemovePreservesOtherRows(t *testing.T) {
	tr := newChangeTracker(3, 0)
	tr.FlagModified(2, 7)

	tr.onSwapRemove(0) // row 0 removed, row 2 (last) swapped into its place
	if len(tr.info) != 2 {
		t.Fatalf("expected 2 rows remaining, got %d", len(tr.info))
	}
	if tr.info[0].Modified != 7 {
		t.Fatalf("expected the swapped-in row's tracking info to move with it, got %+v", tr.info[0])
	}
}

func TestChangeTrackerPushAppendsAtCurrentTick(t *testing.T) {
	tr := newChangeTracker(0, 0)
	tr.onQuerySync(3)
	tr.push(4)

	if !tr.Modified(0) {
		t.Fatalf("a freshly pushed row should read as modified relative to an older last_read")
	}
}
