package types

import (
	"fmt"
	"io"
	"math"

	"github.com/archquiz/go-fp32/util"
	cbg "github.com/whyrusleeping/cbor-gen"
	xerrors "golang.org/x/xerrors"
)

// BitTriple encodes as [sign, exponent, fraction] and ScientificForm as
// [sign, leadingDigit, fractionalDigits, decimalExponent].
// Both are written by hand to keep their narrow Go field types.

var _ cbg.CBORMarshaler = (*BitTriple)(nil)
var _ cbg.CBORUnmarshaler = (*BitTriple)(nil)
var _ cbg.CBORMarshaler = (*ScientificForm)(nil)
var _ cbg.CBORUnmarshaler = (*ScientificForm)(nil)

var lengthBufBitTriple = []byte{131}

func (t *BitTriple) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}

	cw := cbg.NewCborWriter(w)

	if _, err := cw.Write(lengthBufBitTriple); err != nil {
		return err
	}

	m := t.Masked()
	for _, v := range []uint64{uint64(m.Sign), uint64(m.Exponent), uint64(m.Fraction)} {
		if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, v); err != nil {
			return err
		}
	}
	return nil
}

func (t *BitTriple) UnmarshalCBOR(r io.Reader) (err error) {
	*t = BitTriple{}

	cr := cbg.NewCborReader(r)

	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return err
	}
	defer func() {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
	}()

	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 3 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	var fields [3]uint64
	for i := range fields {
		maj, extra, err = cr.ReadHeader()
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for bit field %d", i)
		}
		fields[i] = extra
	}

	t.Sign = uint8(util.Mask(fields[0], SignBits))
	t.Exponent = uint8(util.Mask(fields[1], ExponentBits))
	t.Fraction = uint32(util.Mask(fields[2], FractionBits))
	return nil
}

var lengthBufScientificForm = []byte{132}

func (sf *ScientificForm) MarshalCBOR(w io.Writer) error {
	if sf == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}

	cw := cbg.NewCborWriter(w)

	if _, err := cw.Write(lengthBufScientificForm); err != nil {
		return err
	}

	if err := writeInt(cw, int64(sf.Sign)); err != nil {
		return err
	}
	if err := writeInt(cw, int64(sf.LeadingDigit)); err != nil {
		return err
	}

	if len(sf.FractionalDigits) > cbg.MaxLength {
		return xerrors.Errorf("Value in field sf.FractionalDigits was too long")
	}
	if err := cw.WriteMajorTypeHeader(cbg.MajTextString, uint64(len(sf.FractionalDigits))); err != nil {
		return err
	}
	if _, err := io.WriteString(cw, sf.FractionalDigits); err != nil {
		return err
	}

	return writeInt(cw, int64(sf.DecimalExponent))
}

func (sf *ScientificForm) UnmarshalCBOR(r io.Reader) (err error) {
	*sf = ScientificForm{}

	cr := cbg.NewCborReader(r)

	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return err
	}
	defer func() {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
	}()

	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 4 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	sign, err := readInt(cr)
	if err != nil {
		return xerrors.Errorf("reading sign: %w", err)
	}
	leading, err := readInt(cr)
	if err != nil {
		return xerrors.Errorf("reading leading digit: %w", err)
	}
	digits, err := cbg.ReadString(cr)
	if err != nil {
		return xerrors.Errorf("reading fractional digits: %w", err)
	}
	exp, err := readInt(cr)
	if err != nil {
		return xerrors.Errorf("reading decimal exponent: %w", err)
	}

	sf.Sign = int(sign)
	sf.LeadingDigit = int(leading)
	sf.FractionalDigits = digits
	sf.DecimalExponent = int(exp)
	return nil
}

func writeInt(cw *cbg.CborWriter, v int64) error {
	if v >= 0 {
		return cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(v))
	}
	return cw.WriteMajorTypeHeader(cbg.MajNegativeInt, uint64(-v)-1)
}

func readInt(cr *cbg.CborReader) (int64, error) {
	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return 0, err
	}
	if extra > math.MaxInt64 {
		return 0, fmt.Errorf("int64 overflow")
	}
	switch maj {
	case cbg.MajUnsignedInt:
		return int64(extra), nil
	case cbg.MajNegativeInt:
		return -1 - int64(extra), nil
	default:
		return 0, fmt.Errorf("wrong type for int64 field: %d", maj)
	}
}
