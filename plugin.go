// Plugin: a record collection written in canonical order.
//
// Encoding sorts the objects (unless told not to), then asks each one to
// save itself onto a single Writer. Sorting rearranges Plugin.Objects in
// place; the caller must not use the slice concurrently.
package tes3

import (
	"fmt"
)

// Plugin is an ordered collection of records.
type Plugin struct {
	Objects []Object
}

// SortObjects puts the objects into canonical order. See SortObjects.
func (p *Plugin) SortObjects() error {
	return SortObjects(p.Objects)
}

// Save writes every object in its current order and stops at the first
// failure. Bytes of objects already written remain in w.
func (p *Plugin) Save(w *Writer) error {
	for i, o := range p.Objects {
		if err := w.Save(o); err != nil {
			return fmt.Errorf("save object %d (%s): %w", i, o.Tag(), err)
		}
	}
	return nil
}

// Encode sorts and saves the plugin according to opts (nil means defaults)
// and returns the bytes, compressed if requested.
func (p *Plugin) Encode(opts *Options) ([]byte, error) {
	if opts == nil {
		opts = &Options{}
	}
	alg, err := opts.algorithm()
	if err != nil {
		return nil, err
	}
	log := opts.logger().WithCodepage(opts.Codepage)

	if !opts.KeepOrder {
		if err := p.SortObjects(); err != nil {
			return nil, err
		}
	}

	w := NewWriterCodepage(nil, opts.Codepage)
	w.SetLogger(log)
	if err := p.Save(w); err != nil {
		return nil, err
	}

	sum, err := w.Checksum(alg)
	if err != nil {
		return nil, err
	}
	out := w.Bytes()
	if opts.Compress {
		out = Compress(out)
	}
	log.Debug("plugin encoded",
		"objects", len(p.Objects),
		"bytes", w.Len(),
		"stored", len(out),
		"final_codepage", w.CodepageName(),
		"checksum", fmt.Sprintf("%016x", sum),
	)
	return out, nil
}

// WriteFile encodes the plugin and stores it atomically as dir/name.
func (p *Plugin) WriteFile(dir, name string, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	data, err := p.Encode(opts)
	if err != nil {
		return err
	}
	if err := WriteFile(dir, name, data, opts.Sync); err != nil {
		return err
	}
	opts.logger().Info("plugin written", "dir", dir, "name", name, "bytes", len(data))
	return nil
}
