package commentcode

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sentineltools/commentcode/feature"
	"github.com/sentineltools/commentcode/internal/cerr"
	"github.com/sentineltools/commentcode/model"
	"github.com/sentineltools/commentcode/tokenizer"
)

// CommentJournal is the host's sink for every non-Javadoc comment
// batch, regardless of classification decision (§6 Host contract
// (outputs)).
type CommentJournal interface {
	Record(file string, batch Batch)
}

// Detector is the glue component of §4.8: for each comment batch it
// strips signs, tokenizes, extracts features, scores, and — on a
// positive decision — produces an Issue.
//
// A Detector is not safe for concurrent use (§5); its BPE cache is
// owned by whichever single goroutine drives DetectFile.
type Detector struct {
	Logger    logrus.FieldLogger
	DataDir   string
	MaxTokens int
	Threshold float64
	Journal   CommentJournal

	// Trace, if set, is invoked synchronously after each batch is
	// scored, with the feature vector and prediction that fed the
	// decision (§10 --debug dump). Mirrors
	// tokenizer.RoBERTaTokenizer.Listener.
	Trace func(file string, batch Batch, features []float64, pred model.Prediction)

	grouper  CommentGrouper
	stripper SignStripper

	initOnce  sync.Once
	initErr   error
	ranks     *tokenizer.BpeRanks
	tok       *tokenizer.RoBERTaTokenizer
	extractor *feature.Extractor
	scorer    *model.Model
}

// NewDetector builds a Detector that lazily loads its merge table,
// vocabulary, and model from dataDir on first use (§3 lifecycle, §5).
func NewDetector(logger logrus.FieldLogger, dataDir string, maxTokens int, threshold float64, journal CommentJournal) *Detector {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Detector{
		Logger:    logger,
		DataDir:   dataDir,
		MaxTokens: maxTokens,
		Threshold: threshold,
		Journal:   journal,
	}
}

func (d *Detector) ensureInit() error {
	d.initOnce.Do(func() {
		d.initErr = d.load()
	})
	return d.initErr
}

func (d *Detector) load() error {
	mergesPath := filepath.Join(d.DataDir, "merges.txt")
	mergesFile, err := os.Open(mergesPath)
	if err != nil {
		return &cerr.ResourceLoadFailure{Resource: "merges", Path: mergesPath, Err: err}
	}
	defer mergesFile.Close()

	ranks, err := tokenizer.LoadBpeRanks(mergesFile)
	if err != nil {
		return err
	}
	d.Logger.WithFields(logrus.Fields{"path": mergesPath, "pairs": ranks.Len()}).Debug("loaded BPE merge table")

	vocabPath := filepath.Join(d.DataDir, "vocab.json")
	vocabFile, err := os.Open(vocabPath)
	if err != nil {
		return &cerr.ResourceLoadFailure{Resource: "vocabulary", Path: vocabPath, Err: err}
	}
	defer vocabFile.Close()

	vocab, err := feature.LoadVocabulary(vocabFile)
	if err != nil {
		return err
	}
	d.Logger.WithFields(logrus.Fields{"path": vocabPath, "size": vocab.Len()}).Debug("loaded vocabulary")

	modelPath := filepath.Join(d.DataDir, "model.json")
	modelFile, err := os.Open(modelPath)
	if err != nil {
		return &cerr.ResourceLoadFailure{Resource: "model", Path: modelPath, Err: err}
	}
	defer modelFile.Close()

	scorer, err := model.Load(modelFile, d.Threshold)
	if err != nil {
		return err
	}
	d.Logger.WithFields(logrus.Fields{"path": modelPath, "coefficients": len(scorer.Coefficients)}).Debug("loaded model")

	encoder := tokenizer.NewCachingBpeEncoder(tokenizer.NewBpeEncoder(ranks))

	d.ranks = ranks
	d.tok = tokenizer.NewRoBERTaTokenizer(encoder)
	d.extractor = feature.NewExtractor(vocab, d.MaxTokens)
	d.scorer = scorer
	return nil
}

// DetectFile runs the full pipeline over every syntax token's trivia
// in file, in order, returning the issues found. It preserves the
// in-file order of the trivia that produced them (§5 Ordering).
func (d *Detector) DetectFile(file string, tokens []SyntaxToken) ([]Issue, error) {
	var issues []Issue

	for _, st := range tokens {
		for _, batch := range d.grouper.Group(st.Trivia) {
			if d.Journal != nil {
				d.Journal.Record(file, batch)
			}

			if err := d.ensureInit(); err != nil {
				return nil, err
			}

			text, err := d.stripper.Strip(batch)
			if err != nil {
				return nil, fmt.Errorf("commentcode: %s: %w", file, err)
			}

			toks := d.tok.Tokenize(text)
			feats := d.extractor.Extract(toks)

			pred, err := d.scorer.Predict(feats)
			if err != nil {
				return nil, fmt.Errorf("commentcode: %s: %w", file, err)
			}

			start, _ := batch.Span()
			d.Logger.WithFields(logrus.Fields{
				"file":     file,
				"rule":     RuleKey,
				"line":     start.Line,
				"sigmoid":  pred.Sigmoid,
				"decision": pred.Decide,
			}).Debug("classified comment batch")

			if d.Trace != nil {
				d.Trace(file, batch, feats, pred)
			}

			if pred.Decide {
				issues = append(issues, Issue{
					RuleKey: RuleKey,
					File:    file,
					Span:    spanFromBatch(batch),
					Message: IssueMessage,
					Cost:    0,
				})
			}
		}
	}

	return issues, nil
}
