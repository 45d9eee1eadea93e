package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	log "github.com/inconshreveable/log15"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/cvmlabs/cvm/cvm"
)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	logDirFlag = cli.StringFlag{
		Name:  "logdir",
		Usage: "Directory for per-subsystem log files (default: stderr)",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug",
		Value: cvm.WARN,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "cvm"
	app.Usage = "array runtime core of the CVM"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{configFileFlag, logDirFlag, verbosityFlag}
	app.Commands = []cli.Command{
		{
			Action: dumpConfig,
			Name:   "dumpconfig",
			Usage:  "Show configuration values",
			Description: `The dumpconfig command shows the effective VM settings after applying
the configuration file and command line flags.`,
		},
		{
			Action: selfTest,
			Name:   "selftest",
			Usage:  "Exercise the array copy and allocation natives",
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func selfTest(ctx *cli.Context) error {
	if _, err := makeVMSettings(ctx); err != nil {
		return err
	}
	verbosity := ctx.GlobalInt(verbosityFlag.Name)
	for _, key := range []string{"log.level.copy", "log.level.heap", "log.level.registry", "log.level.misc"} {
		cvm.VM.SetSystemSetting(key, strconv.Itoa(verbosity))
	}
	cvm.CVM_init(nil)
	vm := cvm.VM
	logger := log.New("module", "selftest")

	// Overlapping same-array move.
	bytes := vm.NewByteArray(1, 2, 3, 4, 5)
	if _, err := vm.CallNative(
		"java/lang/System.arraycopy(Ljava/lang/Object;ILjava/lang/Object;II)V",
		bytes, cvm.Int(1), bytes, cvm.Int(3), cvm.Int(2)); err != nil {
		return err
	}
	logger.Info("overlapping byte move done", "result", dumpByteArray(bytes))

	// Element-wise checked copy with a deliberate store failure.
	objects, err := vm.CreateObjectArray(vm.FindClass("java/lang/Object"), 4)
	if err != nil {
		return err
	}
	numbers, err := vm.CreateObjectArray(vm.FindClass("java/lang/Number"), 4)
	if err != nil {
		return err
	}
	objects.SetArrayElement(0, vm.Heap.NewObject(vm.FindClass("java/lang/Integer")))
	objects.SetArrayElement(1, vm.Heap.NewObject(vm.FindClass("java/lang/Integer")))
	objects.SetArrayElement(2, vm.Heap.NewObject(vm.FindClass("java/lang/String")))
	objects.SetArrayElement(3, vm.Heap.NewObject(vm.FindClass("java/lang/Integer")))
	err = vm.ArrayCopy(objects, 0, numbers, 0, 4)
	logger.Info("checked reference copy stopped as expected", "error", err)

	// Multi-dimensional construction.
	grid, err := vm.CreateMultiArray(vm.FindClass("java/lang/String"), []cvm.Int{2, 3})
	if err != nil {
		return err
	}
	logger.Info("multi array built",
		"class", grid.Class().PrettyName(),
		"outer", grid.ArrayLength(),
		"inner", grid.GetArrayElement(0).(cvm.Reference).ArrayLength())

	logger.Info("heap accounting", "totalBytes", vm.Heap.TotalAllocated())
	if verbosity >= cvm.DEBUG {
		spew.Fdump(os.Stderr, vm.SystemSettings)
	}
	return nil
}

func dumpByteArray(arr cvm.ArrayRef) string {
	out := "["
	for i := cvm.Int(0); i < arr.ArrayLength(); i++ {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%d", arr.GetArrayElement(i).(cvm.Byte))
	}
	return out + "]"
}
