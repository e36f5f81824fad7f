//go:build !integration

package recommend

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestVectorizer_Fit(t *testing.T) {
	tests := []struct {
		name    string
		cfg     VectorizerConfig
		docs    []string
		want    []string
		wantErr error
	}{
		{
			name: "drops single character tokens and lowercases",
			cfg:  VectorizerConfig{NGramMin: 1, NGramMax: 1},
			docs: []string{"A b Heist", "CRIME x"},
			want: []string{"crime", "heist"},
		},
		{
			name: "removes stop words before building bigrams",
			cfg:  VectorizerConfig{NGramMin: 1, NGramMax: 2, StopWords: true},
			docs: []string{"the big heist"},
			want: []string{"big", "big heist", "heist"},
		},
		{
			name: "max features keeps most frequent terms and breaks ties alphabetically",
			cfg:  VectorizerConfig{MaxFeatures: 2, NGramMin: 1, NGramMax: 1},
			docs: []string{"apple cherry", "apple banana"},
			want: []string{"apple", "banana"},
		},
		{
			name: "keeps underscores and digits inside tokens",
			cfg:  VectorizerConfig{NGramMin: 1, NGramMax: 1},
			docs: []string{"sci_fi 1980s"},
			want: []string{"1980s", "sci_fi"},
		},
		{
			name:    "only stop words",
			cfg:     VectorizerConfig{NGramMin: 1, NGramMax: 1, StopWords: true},
			docs:    []string{"", "the and of"},
			wantErr: ErrEmptyVocabulary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVectorizer(tt.cfg)
			err := v.Fit(tt.docs)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Fit() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fit() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(v.Terms(), tt.want) {
				t.Errorf("Terms() = %v, want %v", v.Terms(), tt.want)
			}
		})
	}
}

func TestVectorizer_TransformWeights(t *testing.T) {
	v := NewVectorizer(VectorizerConfig{NGramMin: 1, NGramMax: 1})
	m, err := v.FitTransform([]string{"common rare", "common"})
	if err != nil {
		t.Fatalf("FitTransform() error: %v", err)
	}

	row := m.Rows[0]
	if len(row.Indices) != 2 {
		t.Fatalf("row has %d entries, want 2", len(row.Indices))
	}

	// columns are alphabetical: common=0, rare=1
	common, rare := row.Values[0], row.Values[1]
	wantRatio := math.Log(3.0/2.0) + 1
	if got := rare / common; math.Abs(got-wantRatio) > 1e-9 {
		t.Errorf("rare/common = %v, want %v", got, wantRatio)
	}

	if got := norm(row); math.Abs(got-1) > 1e-9 {
		t.Errorf("row norm = %v, want 1", got)
	}

	second := m.Rows[1]
	if len(second.Indices) != 1 || second.Indices[0] != 0 || math.Abs(second.Values[0]-1) > 1e-9 {
		t.Errorf("second row = %+v, want single unit entry in column 0", second)
	}
}

func TestMatrix_CosineRow(t *testing.T) {
	v := NewVectorizer(VectorizerConfig{NGramMin: 1, NGramMax: 1})
	m, err := v.FitTransform([]string{"heist crime", "heist crime", "romance", ""})
	if err != nil {
		t.Fatalf("FitTransform() error: %v", err)
	}

	got := m.CosineRow(0)
	if math.Abs(got[0]-1) > 1e-9 || math.Abs(got[1]-1) > 1e-9 {
		t.Errorf("identical rows should score 1, got %v", got)
	}
	if got[2] != 0 || got[3] != 0 {
		t.Errorf("disjoint and empty rows should score 0, got %v", got)
	}

	if empty := m.CosineRow(3); empty[0] != 0 || empty[3] != 0 {
		t.Errorf("empty source row should score 0 everywhere, got %v", empty)
	}
}
