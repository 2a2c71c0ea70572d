// Command cauchyrs is a developer-facing front end for
// lukechampine.com/cauchyrs: it can print the generated parameter table,
// build a context and dump it, report CPU feature support, and run an
// end-to-end encrypt/shard/erase/reconstruct/decrypt demo.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/aead/chacha20"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"gitlab.com/NebulousLabs/log"
	"golang.org/x/crypto/poly1305"
	"golang.org/x/sys/cpu"
	"lukechampine.com/frand"

	"lukechampine.com/cauchyrs"
	"lukechampine.com/cauchyrs/internal/paramcache"
)

func main() {
	app := cli.NewApp()
	app.Name = "cauchyrs"
	app.Usage = "inspect and exercise the Cauchy Reed-Solomon core"
	app.Commands = []cli.Command{
		searchCommand,
		createCommand,
		infoCommand,
		demoCommand,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "cauchyrs:", err)
		os.Exit(1)
	}
}

var searchCommand = cli.Command{
	Name:  "search",
	Usage: "print the offline-search parameter table, caching rows along the way",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "cache", Value: "cauchyrs-params.bolt", Usage: "path to the parameter cache"},
	},
	Action: func(c *cli.Context) error {
		store, err := paramcache.Open(c.String("cache"))
		if err != nil {
			return err
		}
		defer store.Close()

		for k := 1; k <= cauchyrs.MaxDataShards; k++ {
			for m := 1; m <= cauchyrs.MaxParityShards; m++ {
				if cached, ok, err := store.Get(k, m); err != nil {
					return err
				} else if ok {
					fmt.Println(cached)
					continue
				}
				row := cauchyrs.SearchOne(k, m)
				cached := paramcache.Row{K: row.K, M: row.M, W: row.W, P: row.P, X: row.X, Y: row.Y, B: row.B}
				if err := store.Put(cached); err != nil {
					return err
				}
				fmt.Println(cached)
			}
		}
		return nil
	},
}

var createCommand = cli.Command{
	Name:      "create",
	Usage:     "build a context for k data and m parity shards and print it as hex",
	ArgsUsage: "k m",
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return errors.New("expected exactly two arguments: k m")
		}
		var k, m int
		if _, err := fmt.Sscanf(c.Args().Get(0), "%d", &k); err != nil {
			return errors.Wrap(err, "invalid k")
		}
		if _, err := fmt.Sscanf(c.Args().Get(1), "%d", &m); err != nil {
			return errors.Wrap(err, "invalid m")
		}
		ctx, err := cauchyrs.New(k, m)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(ctx.Bytes()))
		return nil
	},
}

var infoCommand = cli.Command{
	Name:  "info",
	Usage: "report CPU features relevant to the XOR fast paths",
	Action: func(c *cli.Context) error {
		fmt.Println("amd64 SSSE3:  ", cpu.X86.HasSSSE3)
		fmt.Println("amd64 AVX2:   ", cpu.X86.HasAVX2)
		fmt.Println("amd64 AVX512F:", cpu.X86.HasAVX512F)
		fmt.Println()
		fmt.Println("the dot kernel itself is XOR-only and dispatches no SIMD directly;")
		fmt.Println("these features are only consulted by the xorsimd dependency it calls into.")
		return nil
	},
}

var demoCommand = cli.Command{
	Name:      "demo",
	Usage:     "encrypt, erasure-code, erase, reconstruct, and decrypt a random payload",
	ArgsUsage: "k m shardSize",
	Action: func(c *cli.Context) error {
		if c.NArg() != 3 {
			return errors.New("expected exactly three arguments: k m shardSize")
		}
		var k, m, shardSize int
		fmt.Sscanf(c.Args().Get(0), "%d", &k)
		fmt.Sscanf(c.Args().Get(1), "%d", &m)
		fmt.Sscanf(c.Args().Get(2), "%d", &shardSize)

		logger, err := log.NewLogger(os.Stderr)
		if err != nil {
			return errors.Wrap(err, "could not start logger")
		}
		defer logger.Close()

		return runDemo(logger, k, m, shardSize)
	},
}

func runDemo(logger *log.Logger, k, m, shardSize int) error {
	ctx, err := cauchyrs.New(k, m)
	if err != nil {
		return errors.Wrap(err, "could not build context")
	}
	logger.Println("built context for", k, "data and", m, "parity shards")

	plaintext := frand.Bytes(k * shardSize)

	var key [32]byte
	var nonce [8]byte
	if _, err := rand.Read(key[:]); err != nil {
		return errors.Wrap(err, "could not generate key")
	}
	if _, err := rand.Read(nonce[:]); err != nil {
		return errors.Wrap(err, "could not generate nonce")
	}
	stream, err := chacha20.NewCipher(nonce[:], key[:])
	if err != nil {
		return errors.Wrap(err, "could not initialize chacha20 stream")
	}
	ciphertext := make([]byte, len(plaintext))
	stream.XORKeyStream(ciphertext, plaintext)

	var polyKey [32]byte
	copy(polyKey[:], key[:])
	var tag [16]byte
	poly1305.Sum(&tag, ciphertext, &polyKey)
	logger.Println("encrypted payload, tag", hex.EncodeToString(tag[:]))

	parity := make([][]byte, m)
	for i := range parity {
		parity[i] = make([]byte, shardSize)
	}
	total := k + m
	allBits := uint32(1)<<uint(total) - 1
	sourcesMask := uint32(1)<<uint(k) - 1
	targetsMask := allBits &^ sourcesMask
	if err := ctx.Encode(sourcesMask, targetsMask, ciphertext, parity); err != nil {
		return errors.Wrap(err, "could not build parity")
	}
	logger.Println("built", m, "parity shards")

	// simulate losing the first min(k, m) data shards
	erasures := k
	if m < erasures {
		erasures = m
	}
	shards := make([][]byte, total)
	for i := 0; i < k; i++ {
		shards[i] = ciphertext[i*shardSize : (i+1)*shardSize]
	}
	for i := 0; i < m; i++ {
		shards[k+i] = parity[i]
	}
	survivingMask := allBits
	lostMask := uint32(0)
	for i := 0; i < erasures; i++ {
		survivingMask &^= 1 << uint(i)
		lostMask |= 1 << uint(i)
		// zero the lost shard so a reporting bug can't accidentally pass
		for b := range shards[i] {
			shards[i][b] = 0
		}
	}
	logger.Println("erased", erasures, "shards")

	rebuiltBuffer := make([]byte, k*shardSize)
	for i := 0; i < k; i++ {
		copy(rebuiltBuffer[i*shardSize:(i+1)*shardSize], shards[i])
	}
	rebuiltParity := make([][]byte, m)
	for i := range rebuiltParity {
		rebuiltParity[i] = shards[k+i]
	}
	if err := ctx.Encode(survivingMask, lostMask, rebuiltBuffer, rebuiltParity); err != nil {
		return errors.Wrap(err, "could not reconstruct erased shards")
	}

	if !poly1305.Verify(&tag, rebuiltBuffer, &polyKey) {
		return errors.New("reconstructed ciphertext failed its authentication tag")
	}
	logger.Println("reconstructed ciphertext verified against its tag")

	recovered := make([]byte, len(rebuiltBuffer))
	stream2, err := chacha20.NewCipher(nonce[:], key[:])
	if err != nil {
		return errors.Wrap(err, "could not reinitialize chacha20 stream")
	}
	stream2.XORKeyStream(recovered, rebuiltBuffer)

	if !bytesEqual(recovered, plaintext) {
		return errors.New("recovered plaintext does not match the original")
	}
	logger.Println("round trip OK:", len(plaintext), "bytes recovered")
	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
