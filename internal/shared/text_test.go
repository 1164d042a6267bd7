package shared

import "testing"

func TestFold(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain ascii lowercased",
			input: "Happy Days",
			want:  "happy days",
		},
		{
			name:  "diacritics stripped",
			input: "Hà Anh",
			want:  "ha anh",
		},
		{
			name:  "combined marks stripped",
			input: "Béla Fleck",
			want:  "bela fleck",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := Fold(tt.input)
			if got != tt.want {
				t.Errorf("Fold() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFoldContains(t *testing.T) {
	tc := []struct {
		name     string
		haystack string
		needle   string
		want     bool
	}{
		{
			name:     "accented haystack matches plain needle",
			haystack: "Hà Anh",
			needle:   "ha",
			want:     true,
		},
		{
			name:     "plain haystack matches accented needle",
			haystack: "Happy",
			needle:   "há",
			want:     true,
		},
		{
			name:     "case insensitive",
			haystack: "Quiet Storm",
			needle:   "STORM",
			want:     true,
		},
		{
			name:     "no match",
			haystack: "Quiet Storm",
			needle:   "thunder",
			want:     false,
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FoldContains(tt.haystack, tt.needle)
			if got != tt.want {
				t.Errorf("FoldContains(%q, %q) = %v, want %v", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	tc := []struct {
		name   string
		title  string
		artist string
		want   string
	}{
		{
			name:   "basic normalization",
			title:  "Song Title",
			artist: "Artist Name",
			want:   "song title|artist name",
		},
		{
			name:   "extra whitespace",
			title:  "  Song   Title  ",
			artist: "  Artist   Name  ",
			want:   "song title|artist name",
		},
		{
			name:   "diacritics",
			title:  "Hà Anh",
			artist: "Linh",
			want:   "ha anh|linh",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeKey(tt.title, tt.artist)
			if got != tt.want {
				t.Errorf("NormalizeKey() = %v, want %v", got, tt.want)
			}
		})
	}
}
