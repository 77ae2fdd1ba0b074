// Options for encoding plugins.
//
// Options can be built in code or parsed from JSON, e.g.
//
//	{"codepage":"windows-1251","compress":true,"checksum":"blake2b"}
//
// Zero values mean defaults, so an empty document is valid.
package tes3

import (
	json "github.com/goccy/go-json"
)

// Options controls Plugin.Encode and Plugin.WriteFile.
type Options struct {
	Codepage  Codepage `json:"codepage"`   // Starting codepage (default windows-1252)
	KeepOrder bool     `json:"keep_order"` // Skip canonical sorting
	Compress  bool     `json:"compress"`   // Zstd-compress the output
	Checksum  string   `json:"checksum"`   // xxh3 (default), fnv1a or blake2b
	Sync      bool     `json:"sync"`       // fsync before rename in WriteFile
	Logger    *Logger  `json:"-"`
}

// ParseOptions decodes JSON options and checks the names they contain.
func ParseOptions(data []byte) (*Options, error) {
	var opts Options
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, err
	}
	if _, err := opts.algorithm(); err != nil {
		return nil, err
	}
	return &opts, nil
}

func (o *Options) algorithm() (int, error) {
	if o.Checksum == "" {
		return AlgXXHash3, nil
	}
	return ParseAlgorithm(o.Checksum)
}

func (o *Options) logger() *Logger {
	return o.Logger.orNoop()
}
