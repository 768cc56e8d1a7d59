package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cispoly/complexnum"
	"github.com/katalvlaran/cispoly/polynomial"
	"github.com/katalvlaran/cispoly/workbook"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// showCmd prints the named polynomials, or all of them.
func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name...]",
		Short: "Print polynomials in cis notation",
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := c.load()
			if err != nil {
				return err
			}
			names := args
			if len(names) == 0 {
				names = book.Names()
			}
			for _, name := range names {
				p, err := book.Polynomial(name)
				if err != nil {
					return err
				}
				flag := ""
				if p.IsZero(c.tol) {
					flag = " (zero)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s [deg %d]%s = %s\n", name, p.Degree(), flag, p)
			}
			return nil
		},
	}
}

// evalCmd evaluates a polynomial at a point.
func (c *cli) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval NAME POINT",
		Short: "Evaluate a polynomial at a named point or a re,im literal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := c.load()
			if err != nil {
				return err
			}
			p, err := book.Polynomial(args[0])
			if err != nil {
				return err
			}
			x, err := resolvePoint(book, args[1])
			if err != nil {
				return err
			}

			y := p.Evaluate(x)
			c.logger.Debug("evaluated",
				zap.String("polynomial", args[0]),
				zap.Stringer("point", x),
				zap.Stringer("value", y))
			fmt.Fprintln(cmd.OutOrStdout(), y)
			return nil
		},
	}
}

// deriveCmd prints (and optionally stores) the derivative.
func (c *cli) deriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive NAME",
		Short: "Differentiate a polynomial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := c.load()
			if err != nil {
				return err
			}
			p, err := book.Polynomial(args[0])
			if err != nil {
				return err
			}
			return c.emit(cmd, book, p.Derivative())
		},
	}
	c.addSaveFlag(cmd)

	return cmd
}

// binaryCmd builds add, sub and mul.
func (c *cli) binaryCmd(op, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   op + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := c.load()
			if err != nil {
				return err
			}
			a, err := book.Polynomial(args[0])
			if err != nil {
				return err
			}
			b, err := book.Polynomial(args[1])
			if err != nil {
				return err
			}

			var out polynomial.Polynomial
			switch op {
			case "add":
				out = a.Add(b)
			case "sub":
				out = a.Sub(b)
			default:
				out = a.Mul(b)
			}
			c.logger.Debug("combined",
				zap.String("op", op),
				zap.Int("degree", out.Degree()))
			return c.emit(cmd, book, out)
		},
	}
	c.addSaveFlag(cmd)

	return cmd
}

// scaleCmd multiplies every coefficient by a complex factor.
func (c *cli) scaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale NAME FACTOR",
		Short: "Multiply a polynomial by a named point or a re,im literal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := c.load()
			if err != nil {
				return err
			}
			p, err := book.Polynomial(args[0])
			if err != nil {
				return err
			}
			f, err := resolvePoint(book, args[1])
			if err != nil {
				return err
			}
			return c.emit(cmd, book, p.Scale(f))
		},
	}
	c.addSaveFlag(cmd)

	return cmd
}

// equalCmd compares two polynomials within --tol, driven by A's degree.
func (c *cli) equalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equal A B",
		Short: "Compare A with B coefficient by coefficient over A's degree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := c.load()
			if err != nil {
				return err
			}
			a, err := book.Polynomial(args[0])
			if err != nil {
				return err
			}
			b, err := book.Polynomial(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.Equal(b, c.tol))
			return nil
		},
	}
}

// pointCmd prints a point in rectangular and polar form, or stores a new one.
func (c *cli) pointCmd() *cobra.Command {
	var set string
	cmd := &cobra.Command{
		Use:   "point NAME",
		Short: "Show a point, or define it with --set re,im",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := c.load()
			if err != nil {
				return err
			}
			if set != "" {
				z, err := parseComplex(set)
				if err != nil {
					return err
				}
				book.PutPoint(args[0], z)
				if err := book.Save(c.file); err != nil {
					return err
				}
				c.logger.Info("point saved", zap.String("name", args[0]), zap.String("file", c.file))
			}
			z, err := book.Point(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s = %s\n", args[0], z, z.TrigString())
			return nil
		},
	}
	cmd.Flags().StringVar(&set, "set", "", "define the point as re,im")

	return cmd
}

// addSaveFlag registers --save-as on commands that produce a polynomial.
func (c *cli) addSaveFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.saveAs, "save-as", "", "store the result in the workbook under this name")
}

// load reads the workbook named by --file.
func (c *cli) load() (*workbook.File, error) {
	book, err := workbook.Load(c.file)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("workbook loaded",
		zap.String("file", c.file),
		zap.Int("polynomials", len(book.Polynomials)))

	return book, nil
}

// emit prints p and, with --save-as, writes it back into the workbook.
func (c *cli) emit(cmd *cobra.Command, book *workbook.File, p polynomial.Polynomial) error {
	fmt.Fprintln(cmd.OutOrStdout(), p)
	if c.saveAs == "" {
		return nil
	}

	book.Put(c.saveAs, p)
	if err := book.Save(c.file); err != nil {
		return err
	}
	c.logger.Info("result saved", zap.String("name", c.saveAs), zap.String("file", c.file))

	return nil
}

// resolvePoint looks up a named point, falling back to a re,im literal.
func resolvePoint(book *workbook.File, arg string) (complexnum.Complex, error) {
	if _, ok := book.Points[arg]; ok {
		return book.Point(arg)
	}
	z, err := parseComplex(arg)
	if err != nil {
		return complexnum.Complex{}, fmt.Errorf("point %q is neither defined nor a re,im literal: %w", arg, err)
	}

	return z, nil
}

// parseComplex reads "re" or "re,im".
func parseComplex(s string) (complexnum.Complex, error) {
	reText, imText, hasIm := strings.Cut(s, ",")
	re, err := strconv.ParseFloat(strings.TrimSpace(reText), 64)
	if err != nil {
		return complexnum.Complex{}, err
	}
	var im float64
	if hasIm {
		im, err = strconv.ParseFloat(strings.TrimSpace(imText), 64)
		if err != nil {
			return complexnum.Complex{}, err
		}
	}

	return complexnum.New(re, im), nil
}
