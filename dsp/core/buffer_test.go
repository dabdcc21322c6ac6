package core

import "testing"

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 4, 16)

	got := EnsureLen(buf, 8)
	if len(got) != 8 {
		t.Fatalf("len: got %d, want 8", len(got))
	}
	if &got[0] != &buf[0] {
		t.Fatal("capacity not reused")
	}

	got = EnsureLen(buf, 32)
	if len(got) != 32 {
		t.Fatalf("len: got %d, want 32", len(got))
	}

	got = EnsureLen(buf, 0)
	if len(got) != 0 {
		t.Fatalf("len: got %d, want 0", len(got))
	}
}

func TestZeroAndCopyInto(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("index %d: got %v, want 0", i, v)
		}
	}

	dst := make([]float64, 2)
	if n := CopyInto(dst, []float64{7, 8, 9}); n != 2 {
		t.Fatalf("copied %d, want 2", n)
	}
	if dst[0] != 7 || dst[1] != 8 {
		t.Fatalf("dst: got %v", dst)
	}
}

func TestInterleavedIndex(t *testing.T) {
	cases := []struct {
		frame, channels, channel, want int
	}{
		{0, 1, 0, 0},
		{3, 1, 0, 3},
		{0, 2, 1, 1},
		{3, 2, 0, 6},
		{3, 2, 1, 7},
	}

	for _, tc := range cases {
		got := InterleavedIndex(tc.frame, tc.channels, tc.channel)
		if got != tc.want {
			t.Errorf("InterleavedIndex(%d, %d, %d): got %d, want %d",
				tc.frame, tc.channels, tc.channel, got, tc.want)
		}
	}
}

func TestFrames(t *testing.T) {
	if got := Frames(8, 2); got != 4 {
		t.Fatalf("Frames(8, 2): got %d, want 4", got)
	}
	if got := Frames(9, 2); got != 4 {
		t.Fatalf("Frames(9, 2): got %d, want 4", got)
	}
	if got := Frames(8, 0); got != 0 {
		t.Fatalf("Frames(8, 0): got %d, want 0", got)
	}
}

func TestInterleaveDeinterleaveRoundTrip(t *testing.T) {
	left := []float64{1, 2, 3}
	right := []float64{-1, -2, -3}

	inter := Interleave(left, right)
	want := []float64{1, -1, 2, -2, 3, -3}
	if len(inter) != len(want) {
		t.Fatalf("len: got %d, want %d", len(inter), len(want))
	}
	for i := range want {
		if inter[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, inter[i], want[i])
		}
	}

	split := Deinterleave(inter, 2)
	if len(split) != 2 {
		t.Fatalf("channels: got %d, want 2", len(split))
	}
	for i := range left {
		if split[0][i] != left[i] || split[1][i] != right[i] {
			t.Fatalf("frame %d: got (%v, %v), want (%v, %v)",
				i, split[0][i], split[1][i], left[i], right[i])
		}
	}
}
