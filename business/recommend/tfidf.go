package recommend

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

var ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain only stop words or no tokens")

var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)

// VectorizerConfig controls tokenisation and vocabulary size.
type VectorizerConfig struct {
	MaxFeatures int
	NGramMin    int
	NGramMax    int
	StopWords   bool
}

// Vectorizer turns text into L2-normalised TF-IDF rows. Fit must be called
// before Transform.
type Vectorizer struct {
	cfg   VectorizerConfig
	vocab map[string]int
	terms []string
	idf   []float64
}

func NewVectorizer(cfg VectorizerConfig) *Vectorizer {
	if cfg.NGramMin < 1 {
		cfg.NGramMin = 1
	}
	if cfg.NGramMax < cfg.NGramMin {
		cfg.NGramMax = cfg.NGramMin
	}
	return &Vectorizer{cfg: cfg}
}

// Terms returns the fitted vocabulary in column order.
func (v *Vectorizer) Terms() []string {
	return v.terms
}

func (v *Vectorizer) analyze(doc string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	if v.cfg.StopWords {
		kept := tokens[:0]
		for _, t := range tokens {
			if _, stop := englishStopWords[t]; !stop {
				kept = append(kept, t)
			}
		}
		tokens = kept
	}

	if v.cfg.NGramMin == 1 && v.cfg.NGramMax == 1 {
		return tokens
	}

	var grams []string
	for n := v.cfg.NGramMin; n <= v.cfg.NGramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			grams = append(grams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return grams
}

// Fit learns the vocabulary and idf weights from docs.
func (v *Vectorizer) Fit(docs []string) error {
	corpusFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, g := range v.analyze(doc) {
			corpusFreq[g]++
			if _, ok := seen[g]; !ok {
				seen[g] = struct{}{}
				docFreq[g]++
			}
		}
	}

	if len(corpusFreq) == 0 {
		return ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(corpusFreq))
	for t := range corpusFreq {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	if v.cfg.MaxFeatures > 0 && len(terms) > v.cfg.MaxFeatures {
		sort.SliceStable(terms, func(i, j int) bool {
			return corpusFreq[terms[i]] > corpusFreq[terms[j]]
		})
		terms = terms[:v.cfg.MaxFeatures]
		sort.Strings(terms)
	}

	n := float64(len(docs))
	v.terms = terms
	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, t := range terms {
		v.vocab[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}

	return nil
}

// Transform vectorises one document against the fitted vocabulary.
func (v *Vectorizer) Transform(doc string) Vector {
	counts := make(map[int]float64)
	for _, g := range v.analyze(doc) {
		if col, ok := v.vocab[g]; ok {
			counts[col]++
		}
	}

	vec := Vector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for col := range counts {
		vec.Indices = append(vec.Indices, col)
	}
	sort.Ints(vec.Indices)

	sum := 0.0
	for _, col := range vec.Indices {
		w := counts[col] * v.idf[col]
		vec.Values = append(vec.Values, w)
		sum += w * w
	}
	if sum > 0 {
		l2 := math.Sqrt(sum)
		for i := range vec.Values {
			vec.Values[i] /= l2
		}
	}

	return vec
}

func (v *Vectorizer) FitTransform(docs []string) (*Matrix, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}

	m := &Matrix{Rows: make([]Vector, len(docs)), Cols: len(v.terms)}
	for i, doc := range docs {
		m.Rows[i] = v.Transform(doc)
	}
	return m, nil
}
