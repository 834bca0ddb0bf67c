// Package argdef is an embeddable command line argument parser. A host
// program declares typed, named arguments against a context, submits the
// raw argument vector once, and reads parsed values back through typed
// accessors.
//
// For example:
//  ctx, _ := argdef.NewContext(os.Args, argdef.Version("1.0.0"))
//  message, _ := ctx.Declare("message", "m", "MSG", "a message to print", argdef.TypeString|argdef.Required)
//  repeat, _ := ctx.Declare("repeat", "r", "COUNT", "times to print it", argdef.TypeInt)
//  if err := ctx.Submit(); err != nil {
//      os.Exit(2)
//  }
//  msg, _ := message.TryString()
//
// Arguments are matched as --name, --name=VALUE, -short or -short=VALUE.
// Array arguments take space separated values and keep consuming tokens
// until one matches another declared argument. --help/-h is always
// declared, and --version/-v when a version string was supplied; both
// make Submit fail after printing so the host exits without acting.
package argdef
