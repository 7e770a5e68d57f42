package main

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/AlexanderYastrebov/scalar25519"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/blake2b"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scalar25519",
		Short: "arithmetic on edwards25519 scalars",
		Long: `Reduce, validate, clamp, invert and recode scalars modulo the order of the
edwards25519 prime-order subgroup.

Scalars are read and printed as 32-byte little-endian hex strings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		newReduceCmd(),
		newCanonicalCmd(),
		newClampCmd(),
		newInvertCmd(),
		newNAFCmd(),
		newRadixCmd(),
		newHashCmd(),
	)
	return rootCmd
}

func newReduceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reduce <hex>",
		Short: "reduce a 32 or 64-byte integer modulo l",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := decodeHexArg(args[0])
			if err != nil {
				return err
			}
			var s scalar25519.Scalar
			switch len(b) {
			case 32:
				s = scalar25519.FromBytesModOrder([32]byte(b))
			case 64:
				s = scalar25519.FromBytesModOrderWide([64]byte(b))
			default:
				return errors.Wrapf(scalar25519.ErrInvalidLength, "got %d bytes, want 32 or 64", len(b))
			}
			return printScalars(cmd.OutOrStdout(), s)
		},
	}
}

func newCanonicalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canonical <hex>",
		Short: "check that a scalar encoding is canonical",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseScalarArg(args[0])
			if err != nil {
				return err
			}
			return printScalars(cmd.OutOrStdout(), s)
		},
	}
}

func newClampCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clamp <hex>",
		Short: "apply X25519 clamping to a 32-byte string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := decodeHexArg(args[0])
			if err != nil {
				return err
			}
			if len(b) != 32 {
				return errors.Wrapf(scalar25519.ErrInvalidLength, "got %d bytes, want 32", len(b))
			}
			c := scalar25519.ClampInteger([32]byte(b))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(c[:]))
			return err
		},
	}
}

func newInvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invert <hex>...",
		Short: "invert scalars modulo l",
		Long: `Invert scalars modulo l, printing one inverse per line.

Several scalars are inverted together with a single inversion. If any of them
is zero, nothing is printed and the command fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs := make([]scalar25519.Scalar, len(args))
			for i, arg := range args {
				s, err := parseScalarArg(arg)
				if err != nil {
					return err
				}
				xs[i] = s
			}
			if _, err := scalar25519.TryBatchInvert(xs); err != nil {
				return err
			}
			return printScalars(cmd.OutOrStdout(), xs...)
		},
	}
}

func newNAFCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "naf <hex>",
		Short: "print the width-w non-adjacent form of a scalar",
		Long: `Print the nonzero digits of the width-w non-adjacent form of a scalar as
index:digit pairs, least significant first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 2 || width > 8 {
				return errors.Newf("invalid --width %d, must be in [2, 8]", width)
			}
			s, err := parseScalarArg(args[0])
			if err != nil {
				return err
			}
			var digits []string
			for i, d := range s.NonAdjacentForm(width) {
				if d != 0 {
					digits = append(digits, fmt.Sprintf("%d:%d", i, d))
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(digits, " "))
			return err
		},
	}
	addWidthFlag(cmd.Flags(), &width, 5)
	return cmd
}

func newRadixCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "radix <hex>",
		Short: "print the signed radix-2^w digits of a scalar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 4 || width > 8 {
				return errors.Newf("invalid --width %d, must be in [4, 8]", width)
			}
			s, err := parseScalarArg(args[0])
			if err != nil {
				return err
			}
			all := s.AsRadix2w(width)
			digits := make([]string, scalar25519.Radix2wSizeHint(width))
			for i := range digits {
				digits[i] = fmt.Sprint(all[i])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(digits, " "))
			return err
		},
	}
	addWidthFlag(cmd.Flags(), &width, 4)
	return cmd
}

func newHashCmd() *cobra.Command {
	var useBlake2b bool
	cmd := &cobra.Command{
		Use:   "hash <message>",
		Short: "hash a message to a scalar",
		Long: `Hash a message with SHA-512, or BLAKE2b-512 with --blake2b, and reduce the
64-byte digest modulo l.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var h hash.Hash
			if useBlake2b {
				var err error
				if h, err = blake2b.New512(nil); err != nil {
					return errors.Wrap(err, "creating BLAKE2b hash")
				}
			} else {
				h = sha512.New()
			}
			if _, err := io.WriteString(h, args[0]); err != nil {
				return err
			}
			s, err := scalar25519.FromHash(h)
			if err != nil {
				return err
			}
			return printScalars(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().BoolVar(&useBlake2b, "blake2b", false, "use BLAKE2b-512 instead of SHA-512")
	return cmd
}

func addWidthFlag(fs *pflag.FlagSet, width *int, value int) {
	fs.IntVarP(width, "width", "w", value, "window width in bits")
}

func decodeHexArg(arg string) ([]byte, error) {
	b, err := hex.DecodeString(arg)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %q", arg)
	}
	return b, nil
}

func parseScalarArg(arg string) (scalar25519.Scalar, error) {
	b, err := decodeHexArg(arg)
	if err != nil {
		return scalar25519.Scalar{}, err
	}
	s, err := scalar25519.ParseCanonical(b)
	if err != nil {
		return scalar25519.Scalar{}, errors.Wrapf(err, "parsing %q", arg)
	}
	return s, nil
}

func printScalars(w io.Writer, xs ...scalar25519.Scalar) error {
	for _, s := range xs {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
