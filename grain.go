// Package grain implements the Grain-128AEADv2 cipher.
//
// Grain-128AEADv2 is a lightweight stream-cipher-based AEAD and a
// finalist of the NIST lightweight cryptography competition.
//
// References:
//
//    [grain]: https://grain-128aead.github.io/
//
package grain

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"runtime"
	"strconv"

	"github.com/itzmeanjan/grain-128aead/internal/subtle"
)

var errOpen = errors.New("grain: message authentication failed")

const (
	// KeySize is the size in bytes of a Grain-128AEADv2 key.
	KeySize = 16
	// NonceSize is the size in bytes of a Grain-128AEADv2 nonce.
	NonceSize = 12
	// TagSize is the size in bytes of a Grain-128AEADv2
	// authentication tag.
	TagSize = 8
)

type aead struct {
	// key is the 128-bit key.
	key [4]uint32
}

var _ cipher.AEAD = (*aead)(nil)

// New creates a Grain-128AEADv2 AEAD from a 128-bit key.
//
// Grain-128AEADv2 must not be used to encrypt more than 2^80 bits per
// key, nonce pair, including additional authenticated data.
func New(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, errors.New("grain: bad key length")
	}
	return &aead{
		key: [4]uint32{
			binary.LittleEndian.Uint32(key[0:4]),
			binary.LittleEndian.Uint32(key[4:8]),
			binary.LittleEndian.Uint32(key[8:12]),
			binary.LittleEndian.Uint32(key[12:16]),
		},
	}, nil
}

func (a *aead) NonceSize() int {
	return NonceSize
}

func (a *aead) Overhead() int {
	return TagSize
}

func (a *aead) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic("grain: incorrect nonce length: " + strconv.Itoa(len(nonce)))
	}

	var s state
	s.init(&a.key, nonce)
	s.additionalData(additionalData)

	ret, out := subtle.SliceForAppend(dst, len(plaintext)+TagSize)
	if subtle.InexactOverlap(out, plaintext) {
		panic("grain: invalid buffer overlap")
	}

	s.encrypt(out[:len(plaintext)], plaintext)
	s.pad()
	s.tag(out[len(plaintext):])

	return ret
}

func (a *aead) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("grain: incorrect nonce length: " + strconv.Itoa(len(nonce)))
	}
	if len(ciphertext) < TagSize {
		return nil, errOpen
	}

	tag := ciphertext[len(ciphertext)-TagSize:]
	ciphertext = ciphertext[:len(ciphertext)-TagSize]

	var s state
	s.init(&a.key, nonce)
	s.additionalData(additionalData)

	ret, out := subtle.SliceForAppend(dst, len(ciphertext))
	if subtle.InexactOverlap(out, ciphertext) {
		panic("grain: invalid buffer overlap")
	}

	s.decrypt(out, ciphertext)
	s.pad()

	expectedTag := make([]byte, TagSize)
	s.tag(expectedTag)

	if subtle.ConstantTimeCompare(expectedTag, tag) != 1 {
		for i := range out {
			out[i] = 0
		}
		runtime.KeepAlive(out)
		return nil, errOpen
	}
	return ret, nil
}

// additionalData authenticates the DER-encoded length of ad, then ad
// itself. The keystream produced alongside is discarded.
func (s *state) additionalData(ad []byte) {
	var der [9]byte
	s.absorb(appendDER(der[:0], uint64(len(ad))))
	s.absorb(ad)
}

// absorb authenticates data without emitting keystream.
func (s *state) absorb(data []byte) {
	for len(data) >= 4 {
		_, ma := s.nextWord()
		s.accumulate32(ma, binary.LittleEndian.Uint32(data))
		data = data[4:]
	}
	for len(data) > 0 {
		_, ma := s.nextByte()
		s.accumulate8(ma, data[0])
		data = data[1:]
	}
}

func (s *state) encrypt(dst, src []byte) {
	for len(src) >= 4 {
		ks, ma := s.nextWord()
		v := binary.LittleEndian.Uint32(src)
		binary.LittleEndian.PutUint32(dst, v^ks)
		s.accumulate32(ma, v)
		src = src[4:]
		dst = dst[4:]
	}
	for len(src) > 0 {
		ks, ma := s.nextByte()
		v := src[0]
		dst[0] = v ^ ks
		s.accumulate8(ma, v)
		src = src[1:]
		dst = dst[1:]
	}
}

func (s *state) decrypt(dst, src []byte) {
	for len(src) >= 4 {
		ks, ma := s.nextWord()
		v := binary.LittleEndian.Uint32(src) ^ ks
		binary.LittleEndian.PutUint32(dst, v)
		s.accumulate32(ma, v)
		src = src[4:]
		dst = dst[4:]
	}
	for len(src) > 0 {
		ks, ma := s.nextByte()
		v := src[0] ^ ks
		dst[0] = v
		s.accumulate8(ma, v)
		src = src[1:]
		dst = dst[1:]
	}
}

// pad authenticates the terminating 1 bit. The seven high bits of the
// padding byte are zero and leave the accumulator untouched; the clocks
// they consume still advance the registers.
func (s *state) pad() {
	_, ma := s.nextByte()
	s.accumulate8(ma, 0x01)
}

func (s *state) tag(dst []byte) {
	binary.LittleEndian.PutUint64(dst, s.acc)
}

// appendDER appends the DER encoding of the associated data length n:
// n itself if it fits in seven bits, otherwise 0x80|c followed by the c
// big-endian bytes of n.
func appendDER(dst []byte, n uint64) []byte {
	if n < 0x80 {
		return append(dst, byte(n))
	}

	c := 0
	for t := n; t != 0; t >>= 8 {
		c++
	}

	dst = append(dst, byte(0x80|c))
	for i := c - 1; i >= 0; i-- {
		dst = append(dst, byte(n>>(8*i)))
	}
	return dst
}
