// Package tfidf implements the lexical similarity index used for question
// answering. It builds a sparse term/bigram tf-idf vector space over every
// text chunk of every program and answers queries by brute-force cosine
// similarity.
package tfidf

import (
	"math"
	"sort"
	"strings"

	"github.com/akulov/progadvisor"
)

// Ensure Index implements progadvisor.Answerer at compile time.
var _ progadvisor.Answerer = (*Index)(nil)

// User-facing fallback messages, carried over from the product copy.
const (
	// NoDataMessage is returned when a program restriction leaves no
	// candidate chunks.
	NoDataMessage = "Нет данных по выбранной программе."

	// OffTopicMessage is returned when the best similarity falls below
	// the relevance threshold.
	OffTopicMessage = "Этот вопрос не относится к выбранным программам. " +
		"Задайте вопрос об обучении, программах, курсе, сроках, дисциплинах и т.п."
)

// Options configures index construction. Zero values fall back to the
// defaults from progadvisor.DefaultConfig.
type Options struct {
	// RelevanceThreshold is the minimum cosine similarity for a question
	// to be considered on-topic.
	RelevanceThreshold float64

	// TopK is the number of chunks concatenated into an answer.
	TopK int

	// MinDocFreq is the minimum number of chunks a term must appear in to
	// enter the vocabulary.
	MinDocFreq int
}

func (o *Options) applyDefaults() {
	def := progadvisor.DefaultConfig()
	if o.RelevanceThreshold == 0 {
		o.RelevanceThreshold = def.RelevanceThreshold
	}
	if o.TopK == 0 {
		o.TopK = def.TopK
	}
	if o.MinDocFreq == 0 {
		o.MinDocFreq = def.MinDocFreq
	}
}

// row is one indexed chunk: its owning program, its position within that
// program, the original text, and its L2-normalized sparse vector.
type row struct {
	programKey string
	chunkIndex int
	text       string
	vec        map[int]float64
}

// Index is an immutable lexical vector space over all program chunks.
// It is never updated incrementally: any corpus change requires a full
// rebuild. Safe for unlimited concurrent reads once built.
type Index struct {
	vocab map[string]int
	idf   []float64
	rows  []row
	opts  Options
}

// Build fits the vector space over every chunk of every program.
// Programs are visited in sorted key order so row order is deterministic.
// Returns EINVALID when the corpus is empty or no term clears the
// document-frequency floor.
func Build(programs map[string]*progadvisor.Program, opts Options) (*Index, error) {
	opts.applyDefaults()

	keys := make([]string, 0, len(programs))
	for k := range programs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var rows []row
	var docs [][]string // term stream per row
	for _, k := range keys {
		for i, chunk := range programs[k].TextChunks {
			rows = append(rows, row{programKey: k, chunkIndex: i, text: chunk})
			docs = append(docs, terms(Normalize(chunk)))
		}
	}
	if len(rows) == 0 {
		return nil, progadvisor.Errorf(progadvisor.EINVALID, "no text chunks to index")
	}

	// Document frequencies over unigrams and bigrams.
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, t := range doc {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	// Stable vocabulary ordering; drop terms below the frequency floor.
	vocabTerms := make([]string, 0, len(df))
	for t, n := range df {
		if n >= opts.MinDocFreq {
			vocabTerms = append(vocabTerms, t)
		}
	}
	sort.Strings(vocabTerms)
	if len(vocabTerms) == 0 {
		return nil, progadvisor.Errorf(progadvisor.EINVALID,
			"corpus too small: no term appears in %d or more chunks", opts.MinDocFreq)
	}

	idx := &Index{
		vocab: make(map[string]int, len(vocabTerms)),
		idf:   make([]float64, len(vocabTerms)),
		rows:  rows,
		opts:  opts,
	}
	n := float64(len(docs))
	for i, t := range vocabTerms {
		idx.vocab[t] = i
		// Smoothed inverse document frequency.
		idx.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	for i := range idx.rows {
		idx.rows[i].vec = idx.vectorize(docs[i])
	}

	return idx, nil
}

// Len returns the number of indexed chunks.
func (idx *Index) Len() int { return len(idx.rows) }

// Ask answers a question by cosine similarity against every indexed chunk.
// With a non-empty onlyPrograms, chunks of other programs are ignored; a
// restriction matching nothing yields AnswerNoData with score 0. A best
// score below the relevance threshold yields AnswerOffTopic carrying the
// near-miss score. Otherwise the top-K chunks are concatenated with blank
// lines in descending score order, ties kept in original row order.
func (idx *Index) Ask(question string, onlyPrograms []string) progadvisor.Answer {
	only := make(map[string]struct{}, len(onlyPrograms))
	for _, k := range onlyPrograms {
		only[k] = struct{}{}
	}

	var candidates []int
	for i := range idx.rows {
		if len(only) > 0 {
			if _, ok := only[idx.rows[i].programKey]; !ok {
				continue
			}
		}
		candidates = append(candidates, i)
	}
	if len(candidates) == 0 {
		return progadvisor.Answer{Text: NoDataMessage, Score: 0, Outcome: progadvisor.AnswerNoData}
	}

	qvec := idx.vectorize(terms(Normalize(question)))
	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		scores[i] = dot(qvec, idx.rows[c].vec)
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	best := scores[order[0]]
	if best < idx.opts.RelevanceThreshold {
		return progadvisor.Answer{Text: OffTopicMessage, Score: best, Outcome: progadvisor.AnswerOffTopic}
	}

	k := idx.opts.TopK
	if k > len(order) {
		k = len(order)
	}
	parts := make([]string, 0, k)
	for _, o := range order[:k] {
		parts = append(parts, strings.TrimSpace(idx.rows[candidates[o]].text))
	}
	return progadvisor.Answer{
		Text:    strings.Join(parts, "\n\n"),
		Score:   best,
		Outcome: progadvisor.AnswerMatched,
	}
}

// vectorize builds an L2-normalized sparse tf-idf vector from a term
// stream. Terms outside the vocabulary are ignored.
func (idx *Index) vectorize(doc []string) map[int]float64 {
	counts := make(map[int]int)
	for _, t := range doc {
		if i, ok := idx.vocab[t]; ok {
			counts[i]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	vec := make(map[int]float64, len(counts))
	var norm float64
	for i, c := range counts {
		w := float64(c) * idx.idf[i]
		vec[i] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// dot computes the dot product of two sparse vectors. Both sides are
// L2-normalized, so this is the cosine similarity.
func dot(a, b map[int]float64) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var sum float64
	for i, v := range a {
		if w, ok := b[i]; ok {
			sum += v * w
		}
	}
	return sum
}
