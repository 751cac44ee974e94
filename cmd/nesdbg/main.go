// Command nesdbg is a small host driver for the nes core: load an iNES
// image, inspect its header, disassemble a range of its PRG ROM, or
// single-step the CPU while printing a register trace.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cheshirecat/nescore/nes"
)

func main() {
	app := &cli.App{
		Name:  "nesdbg",
		Usage: "inspect and single-step an iNES ROM against the nes core",
		Commands: []*cli.Command{
			infoCommand(),
			disasmCommand(),
			runCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadCartridge(path string) (*nes.Cartridge, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading rom")
	}
	cart, err := nes.NewCartridge(image)
	if err != nil {
		return nil, errors.Wrap(err, "parsing rom")
	}
	return cart, nil
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "print the iNES header and mirroring mode",
		ArgsUsage: "<rom-file>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("expected exactly one rom file argument", 1)
			}
			cart, err := loadCartridge(c.Args().First())
			if err != nil {
				return err
			}
			fmt.Printf("valid:     %v\n", cart.ImageValid())
			fmt.Printf("prg banks: %d (16KB each)\n", cart.PrgBankCount())
			fmt.Printf("chr banks: %d (8KB each)\n", cart.ChrBankCount())
			fmt.Printf("mirroring: %v\n", cart.Mirror)
			return nil
		},
	}
}

func disasmCommand() *cli.Command {
	var start, stop uint

	return &cli.Command{
		Name:      "disasm",
		Usage:     "disassemble the given address range",
		ArgsUsage: "<rom-file>",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "start", Value: 0x8000, Destination: &start},
			&cli.UintFlag{Name: "stop", Value: 0x8100, Destination: &stop},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("expected exactly one rom file argument", 1)
			}
			cart, err := loadCartridge(c.Args().First())
			if err != nil {
				return err
			}

			bus := nes.NewBus()
			bus.InsertCartridge(cart)
			bus.Reset()

			lines := bus.Cpu.Disassemble(uint16(start), uint16(stop))
			for addr := uint16(start); addr <= uint16(stop); addr++ {
				if line, ok := lines[addr]; ok {
					fmt.Println(line)
				}
			}
			return nil
		},
	}
}

func runCommand() *cli.Command {
	var steps uint

	return &cli.Command{
		Name:      "run",
		Usage:     "single-step the CPU, printing a register trace",
		ArgsUsage: "<rom-file>",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "steps", Value: 10, Destination: &steps},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("expected exactly one rom file argument", 1)
			}
			cart, err := loadCartridge(c.Args().First())
			if err != nil {
				return err
			}

			bus := nes.NewBus()
			bus.InsertCartridge(cart)
			bus.Reset()

			for i := uint(0); i < steps; i++ {
				// The CPU only ticks on every third Bus.Clock() call (the
				// PPU:CPU 3:1 clock ratio), so draining the rest of the
				// current instruction and then advancing into the next one
				// each take a variable number of Clock() calls.
				for !bus.Cpu.Complete() {
					bus.Clock()
				}
				for bus.Cpu.Complete() {
					bus.Clock()
				}
				cpu := bus.Cpu
				fmt.Printf("PC:%04X A:%02X X:%02X Y:%02X SP:%02X ST:%02X\n",
					cpu.Pc, cpu.A, cpu.X, cpu.Y, cpu.Sp, cpu.Status)
			}
			return nil
		},
	}
}
