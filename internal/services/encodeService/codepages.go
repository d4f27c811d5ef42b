package encodeservice

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// charmapEntries returns the single-byte code pages.
func charmapEntries() []Entry {
	return []Entry{
		textEntry("latin_1", charmap.ISO8859_1,
			"8859", "cp819", "iso8859", "iso8859_1", "iso_8859_1", "iso_8859_1_1987", "iso_ir_100", "l1", "latin", "latin1"),
		textEntry("iso8859_2", charmap.ISO8859_2, "iso_8859_2", "iso_ir_101", "l2", "latin2"),
		textEntry("iso8859_3", charmap.ISO8859_3, "iso_8859_3", "iso_ir_109", "l3", "latin3"),
		textEntry("iso8859_4", charmap.ISO8859_4, "iso_8859_4", "iso_ir_110", "l4", "latin4"),
		textEntry("iso8859_5", charmap.ISO8859_5, "cyrillic", "iso_8859_5", "iso_ir_144"),
		textEntry("iso8859_6", charmap.ISO8859_6, "arabic", "asmo_708", "ecma_114", "iso_8859_6", "iso_ir_127"),
		textEntry("iso8859_7", charmap.ISO8859_7, "ecma_118", "elot_928", "greek", "greek8", "iso_8859_7", "iso_ir_126"),
		textEntry("iso8859_8", charmap.ISO8859_8, "hebrew", "iso_8859_8", "iso_ir_138"),
		textEntry("iso8859_9", charmap.ISO8859_9, "iso_8859_9", "iso_ir_148", "l5", "latin5"),
		textEntry("iso8859_10", charmap.ISO8859_10, "iso_8859_10", "iso_ir_157", "l6", "latin6"),
		textEntry("iso8859_13", charmap.ISO8859_13, "iso_8859_13", "l7", "latin7"),
		textEntry("iso8859_14", charmap.ISO8859_14, "iso_8859_14", "iso_celtic", "iso_ir_199", "l8", "latin8"),
		textEntry("iso8859_15", charmap.ISO8859_15, "iso_8859_15", "l9", "latin9"),
		textEntry("iso8859_16", charmap.ISO8859_16, "iso_8859_16", "iso_ir_226", "l10", "latin10"),
		textEntry("cp037", charmap.CodePage037, "037", "csibm037", "ebcdic_cp_ca", "ebcdic_cp_us", "ibm037", "ibm039"),
		textEntry("cp437", charmap.CodePage437, "437", "cspc8codepage437", "ibm437"),
		textEntry("cp850", charmap.CodePage850, "850", "cspc850multilingual", "ibm850"),
		textEntry("cp852", charmap.CodePage852, "852", "cspcp852", "ibm852"),
		textEntry("cp855", charmap.CodePage855, "855", "csibm855", "ibm855"),
		textEntry("cp858", charmap.CodePage858, "858", "csibm858", "ibm858"),
		textEntry("cp860", charmap.CodePage860, "860", "csibm860", "ibm860"),
		textEntry("cp862", charmap.CodePage862, "862", "cspc862latinhebrew", "ibm862"),
		textEntry("cp863", charmap.CodePage863, "863", "csibm863", "ibm863"),
		textEntry("cp865", charmap.CodePage865, "865", "csibm865", "ibm865"),
		textEntry("cp866", charmap.CodePage866, "866", "csibm866", "ibm866"),
		textEntry("cp1047", charmap.CodePage1047, "1047", "ibm1047"),
		textEntry("cp1140", charmap.CodePage1140, "1140", "ibm1140"),
		textEntry("cp874", charmap.Windows874, "windows_874"),
		textEntry("cp1250", charmap.Windows1250, "1250", "windows_1250"),
		textEntry("cp1251", charmap.Windows1251, "1251", "windows_1251"),
		textEntry("cp1252", charmap.Windows1252, "1252", "windows_1252"),
		textEntry("cp1253", charmap.Windows1253, "1253", "windows_1253"),
		textEntry("cp1254", charmap.Windows1254, "1254", "windows_1254"),
		textEntry("cp1255", charmap.Windows1255, "1255", "windows_1255"),
		textEntry("cp1256", charmap.Windows1256, "1256", "windows_1256"),
		textEntry("cp1257", charmap.Windows1257, "1257", "windows_1257"),
		textEntry("cp1258", charmap.Windows1258, "1258", "windows_1258"),
		textEntry("koi8_r", charmap.KOI8R, "cskoi8r"),
		textEntry("koi8_u", charmap.KOI8U, "koi8u"),
		textEntry("mac_roman", charmap.Macintosh, "macintosh", "macroman"),
		textEntry("mac_cyrillic", charmap.MacintoshCyrillic, "maccyrillic"),
	}
}

// cjkEntries returns the multi-byte East Asian encodings.
func cjkEntries() []Entry {
	return []Entry{
		textEntry("gbk", simplifiedchinese.GBK, "936", "cp936", "ms936"),
		textEntry("gb18030", simplifiedchinese.GB18030, "gb18030_2000"),
		textEntry("hz", simplifiedchinese.HZGB2312, "hzgb", "hz_gb", "hz_gb_2312"),
		textEntry("big5", traditionalchinese.Big5, "big5_tw", "csbig5"),
		textEntry("euc_jp", japanese.EUCJP, "eucjp", "ujis", "u_jis"),
		textEntry("iso2022_jp", japanese.ISO2022JP, "csiso2022jp", "iso2022jp", "iso_2022_jp"),
		textEntry("shift_jis", japanese.ShiftJIS, "csshiftjis", "shiftjis", "sjis", "s_jis"),
		textEntry("euc_kr", korean.EUCKR, "euckr", "korean", "ksc5601", "ks_c_5601", "ks_c_5601_1987", "ksx1001", "ks_x_1001"),
	}
}
