package assess

import (
	"errors"
	"math"
)

// errEmptyVocabulary is returned when every document degenerates to
// nothing after tokenization and stop-word removal.
var errEmptyVocabulary = errors.New("empty vocabulary after stop-word removal")

// meanTFIDFSimilarity builds a TF-IDF vector space over all documents
// and returns the mean cosine similarity between the first document and
// the rest. Term weighting uses smoothed inverse document frequency,
// idf = ln((1+n)/(1+df)) + 1, with l2-normalized vectors, so identical
// documents always score 1 and disjoint documents 0.
func meanTFIDFSimilarity(docs []string) (float64, error) {
	if len(docs) < 2 {
		return 0, nil
	}

	tokenized := make([][]string, len(docs))
	vocab := map[string]int{}
	for i, doc := range docs {
		for _, tok := range tokenize(doc) {
			if _, stop := stopWords[tok]; stop {
				continue
			}
			tokenized[i] = append(tokenized[i], tok)
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(vocab)
			}
		}
	}
	if len(vocab) == 0 {
		return 0, errEmptyVocabulary
	}

	// Document frequency per term.
	df := make([]int, len(vocab))
	for _, toks := range tokenized {
		seen := map[int]bool{}
		for _, tok := range toks {
			seen[vocab[tok]] = true
		}
		for idx := range seen {
			df[idx]++
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, f := range df {
		idf[i] = math.Log((1+n)/(1+float64(f))) + 1
	}

	vectors := make([][]float64, len(docs))
	for i, toks := range tokenized {
		vec := make([]float64, len(vocab))
		for _, tok := range toks {
			vec[vocab[tok]]++
		}
		var norm float64
		for j := range vec {
			vec[j] *= idf[j]
			norm += vec[j] * vec[j]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range vec {
				vec[j] /= norm
			}
		}
		vectors[i] = vec
	}

	// Vectors are unit length (or zero), so cosine is a dot product.
	var sum float64
	for _, other := range vectors[1:] {
		var dot float64
		for j, v := range vectors[0] {
			dot += v * other[j]
		}
		sum += dot
	}
	return sum / float64(len(vectors)-1), nil
}
