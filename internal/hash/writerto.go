package hash

import "io"

// WriterToWithDomain is a value that can write itself to a Hash, under a domain
// naming its kind.
//
// Two values with the same bytes but different domains hash differently.
type WriterToWithDomain interface {
	io.WriterTo

	// Domain returns a context string, unique for each implementor.
	Domain() string
}

// writeWithDomain writes out `(<domain><data>)`.
func writeWithDomain(w io.Writer, object WriterToWithDomain) error {
	for _, chunk := range [][]byte{[]byte("("), []byte(object.Domain())} {
		if _, err := w.Write(chunk); err != nil {
			return err
		}
	}
	if _, err := object.WriteTo(w); err != nil {
		return err
	}
	_, err := w.Write([]byte(")"))
	return err
}

// BytesWithDomain annotates a chunk of data with a domain.
type BytesWithDomain struct {
	TheDomain string
	Bytes     []byte
}

// WriteTo implements io.WriterTo.
func (b BytesWithDomain) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes)
	return int64(n), err
}

// Domain implements WriterToWithDomain.
func (b BytesWithDomain) Domain() string {
	return b.TheDomain
}
