package argdef_test

import (
	"fmt"
	"os"

	"github.com/argdef/argdef"
)

func Example() {
	argv := []string{"/mock/helloworld", "--message", "Hello World!", "--repeat=2", "-V"}
	ctx, err := argdef.NewContext(argv, argdef.Version("1.0.0"))
	if err != nil {
		panic(err)
	}
	defer ctx.Destroy()

	message, _ := ctx.Declare("message", "m", "MSG", "a message to print", argdef.TypeString|argdef.Required)
	repeat, _ := ctx.Declare("repeat", "r", "COUNT", "times to print the message", argdef.TypeInt)
	verbose, _ := ctx.Declare("verbose", "V", "", "print additional info", argdef.TypeSwitch)

	if err := ctx.Submit(); err != nil {
		// The parser already printed a diagnostic or the help text.
		os.Exit(2)
	}

	msg, _ := message.TryString()
	n := int64(10)
	if v, ok := repeat.TryInt(); ok {
		n = v
	}
	if v, _ := verbose.TryBool(); v {
		fmt.Printf("message = %q\n", msg)
	}
	for i := int64(0); i < n; i++ {
		fmt.Println(msg)
	}
	// Output:
	// message = "Hello World!"
	// Hello World!
	// Hello World!
}
