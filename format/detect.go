package format

import (
	"compress/bzip2"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dpknap/minknap/core"
)

// Kind names one of the three recognized instance syntaxes, as declared by
// a directory's FORMAT.txt.
type Kind string

const (
	KnapsackStandard  Kind = "knapsack_standard"
	SubsetSumStandard Kind = "subsetsum_standard"
	KnapsackPisinger  Kind = "knapsack_pisinger"
)

// DetectKind reads the FORMAT.txt sibling of instancePath's directory and
// returns the declared Kind, or ErrFormatFileMissing if no such file
// exists.
func DetectKind(instancePath string) (Kind, error) {
	formatPath := filepath.Join(filepath.Dir(instancePath), "FORMAT.txt")
	data, err := os.ReadFile(formatPath)
	if os.IsNotExist(err) {
		return "", ErrFormatFileMissing
	}
	if err != nil {
		return "", err
	}

	line := strings.TrimSpace(strings.SplitN(string(data), "\n", 2)[0])
	switch Kind(line) {
	case KnapsackStandard, SubsetSumStandard, KnapsackPisinger:
		return Kind(line), nil
	default:
		return "", ErrUnknownFormat
	}
}

// Options controls how ReadInstance locates and decodes auxiliary input.
type Options struct {
	// CertificatePath, if set, is read as a `knapsack_standard`/
	// `subsetsum_standard` certificate once the instance itself is parsed.
	// Ignored for `knapsack_pisinger`, which embeds its own.
	CertificatePath string
}

// ReadInstance opens instancePath, transparently decompressing it when the
// path itself ends in `.bz2` (no sibling file is looked for), detects its
// syntax via DetectKind, and parses
// it. Returns the parsed Instance and, if one was found (embedded for
// Pisinger, or read from opts.CertificatePath for the standard syntaxes),
// the known-optimal certificate Solution.
func ReadInstance(instancePath string, opts Options) (*core.Instance, *core.Solution, error) {
	kind, err := DetectKind(instancePath)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(instancePath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(instancePath, ".bz2") {
		r = bzip2.NewReader(f)
	}

	switch kind {
	case KnapsackStandard:
		ins, err := ReadStandard(r)
		if err != nil {
			return nil, nil, err
		}
		sol, err := readSideCertificate(ins, opts.CertificatePath)
		if err != nil {
			return nil, nil, err
		}
		return ins, sol, nil
	case SubsetSumStandard:
		ins, err := ReadSubsetSumStandard(r)
		if err != nil {
			return nil, nil, err
		}
		sol, err := readSideCertificate(ins, opts.CertificatePath)
		if err != nil {
			return nil, nil, err
		}
		return ins, sol, nil
	case KnapsackPisinger:
		return ReadPisinger(r)
	default:
		return nil, nil, ErrUnknownFormat
	}
}

func readSideCertificate(ins *core.Instance, path string) (*core.Solution, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return ReadCertificate(f, ins)
}
