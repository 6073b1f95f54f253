// SPDX-License-Identifier: MIT

// Package corpus holds the fixed sample texts used by the demo mode of the
// command-line tool, the examples and the tests.
package corpus

// English is a public-domain English passage (Dickens, A Tale of Two Cities)
// long enough for frequency statistics to settle.
const English = `It was the best of times, it was the worst of times, it was the age of
wisdom, it was the age of foolishness, it was the epoch of belief, it was the
epoch of incredulity, it was the season of Light, it was the season of
Darkness, it was the spring of hope, it was the winter of despair, we had
everything before us, we had nothing before us, we were all going direct to
Heaven, we were all going direct the other way - in short, the period was so
far like the present period, that some of its noisiest authorities insisted on
its being received, for good or for evil, in the superlative degree of
comparison only. There were a king with a large jaw and a queen with a plain
face, on the throne of England; there were a king with a large jaw and a queen
with a fair face, on the throne of France. In both countries it was clearer
than crystal to the lords of the State preserves of loaves and fishes, that
things in general were settled for ever.`

// Samples are the classroom ciphertexts analysed by demo mode, in the
// order they were set. They are space-separated five-letter groups or
// one continuous run of letters.
var Samples = []string{
	"PHTGGOAHRRIHRZODTXPUMAPOYQIPABODIRDDQQDQCGBGMXDXEXHOHOQPXGZXXSQDSAMOVXTIDPZGPSIXAOWAAYAIRX",
	"HJMLK DICFM TOOTV GPAQP PIJOP CCIBY EWHDW OJQQP FOZNQ LVREQ MEBQW EFDAI FSNUL TMUYF HOMZG YNHGT QUYWB ZMZFG AFWUV TOTIJ ZNQBA ZAOMP CETWQ BJOCI KFWOO RQGGT FKLGG BCTMH OKQIO KIBLQ VCXCS SSZGO MSFFB QBEQW UDGZA HUTMU DOHZQ AQPTK SDMQB OHZQZ UEPDG DBUOR JAOMU",
	"MIJCE JWPYG BXVCA PIJZS CWHYD CLLQL NBPMI UMAJW RXOHH RGODT XVHRE LEUME MIWWO HIKSA EIJSA WKLOT QIZEO AENPL JRKDC JTLEH NJPIE MHPCE LXHNC NWZDT XVHRE MICTC NLHDB NIUCE YPHNE MAPEH BXVCA PIHCE JRLEW XVRDW QMJSH JZLCE MYJPD LSZES JRKLL USDPD JKYPA CHLLL VSYPF UIETB RPPEY RRLYT NVWCI BIZEO AENP",
}

// Keywords is the demo keyword list.
var Keywords = []string{"hope"}
