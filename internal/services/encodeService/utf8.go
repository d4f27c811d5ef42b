package encodeservice

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// unicodeEntries returns the UTF family and ASCII.
//
// The BOM variants (utf_16, utf_32) write a little-endian byte order mark, so
// "A" under utf_16 is ff fe 41 00.
func unicodeEntries() []Entry {
	return []Entry{
		textEntry("ascii", asciiEncoding(),
			"646", "ansi_x3.4_1968", "cp367", "csascii", "ibm367", "iso646_us", "us", "us_ascii"),
		textEntry("utf_8", unicode.UTF8,
			"u8", "utf", "utf8", "utf8_ucs2", "utf8_ucs4", "cp65001"),
		textEntry("utf_8_sig", unicode.UTF8BOM,
			"utf8_sig", "utf8_bom"),
		textEntry("utf_16", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
			"u16", "utf16"),
		textEntry("utf_16_le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
			"unicodelittleunmarked", "utf_16le"),
		textEntry("utf_16_be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
			"unicodebigunmarked", "utf_16be"),
		textEntry("utf_32", utf32.UTF32(utf32.LittleEndian, utf32.UseBOM),
			"u32", "utf32"),
		textEntry("utf_32_le", utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
			"utf_32le"),
		textEntry("utf_32_be", utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
			"utf_32be"),
	}
}

// asciiEncoding returns the strict 7-bit encoding from the IANA index. It
// rejects every byte above 0x7f instead of substituting it.
func asciiEncoding() encoding.Encoding {
	enc, err := ianaindex.IANA.Encoding("US-ASCII")
	if err != nil {
		return nil
	}
	return enc
}

func textEntry(name string, enc encoding.Encoding, aliases ...string) Entry {
	e := Entry{Name: name, Aliases: aliases}
	if enc != nil {
		e.Codec = textCodec{enc: enc}
	}
	return e
}
