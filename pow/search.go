package pow

import (
	"log"
	"time"

	"github.com/docker/go-units"
)

// Searcher runs the prefix search. The zero value searches silently.
type Searcher struct {
	// Logger receives progress lines. nil disables logging.
	Logger *log.Logger
	// ProgressEvery is the number of candidates between progress lines.
	// Zero disables progress lines.
	ProgressEvery uint64
}

// Search returns the first match over the full 32-bit candidate space, or
// ErrPrefixNotFound once every candidate has been tried.
func Search(in *Input) (*Match, error) {
	return (&Searcher{}).Search(in)
}

func (s *Searcher) Search(in *Input) (*Match, error) {
	return s.run(NewIterator(in))
}

func (s *Searcher) run(it *Iterator) (*Match, error) {
	start := time.Now()
	for {
		a, ok := it.Next()
		if !ok {
			s.logf("search: exhausted %s candidates (%s)", countString(it.Tried()), elapsed(start))
			return nil, ErrPrefixNotFound
		}
		if a.Digest.HasMarker() {
			s.logf("search: found prefix %s after %s candidates (%s)", a.Prefix, countString(it.Tried()), elapsed(start))
			return &Match{Digest: a.Digest, Prefix: a.Prefix}, nil
		}
		if s.ProgressEvery > 0 && it.Tried()%s.ProgressEvery == 0 {
			s.logf("search: tried %s candidates, at prefix %s", countString(it.Tried()), a.Prefix)
		}
	}
}

func (s *Searcher) logf(format string, v ...interface{}) {
	if s.Logger == nil {
		return
	}
	s.Logger.Printf(format, v...)
}

var countUnits = []string{"", "k", "M", "G", "T"}

func countString(n uint64) string {
	return units.CustomSize("%.4g%s", float64(n), 1000.0, countUnits)
}

func elapsed(start time.Time) string {
	return units.HumanDuration(time.Since(start))
}
