// Package domform keeps the state of HTML-style forms: registered fields,
// captured values, validation errors and submit handling.
//
// The package uses an internal package for implementation details:
//
//   - internal: Path parsing, the nested value tree and form-data conversion
//
// The host document is abstracted behind the Element and Container
// interfaces. The memdom subpackage provides an in-memory implementation
// built from HTML markup.
//
// # Basic Usage
//
// Register fields and attach them once their elements exist:
//
//	m := domform.New()
//	reg := m.Register("email", &domform.RegisterOptions{Required: true})
//	reg.Attach(emailInput)
//
// Attach a whole form and handle its submission:
//
//	m.RegisterContainer(form)
//	onSubmit, err := m.HandleSubmit(form, func(v domform.Value) {
//		fmt.Println(v)
//	}, func(errs map[string]string) {
//		fmt.Println(errs)
//	})
//
// # Paths
//
// Field names are paths into a nested value tree:
//
//	user.name        -> {"user": {"name": ...}}
//	tags[0]          -> {"tags": [...]}
//	meta['a.b']      -> {"meta": {"a.b": ...}}
//
// A bracketed segment made only of digits is a list index, quoted or not.
//
// # Configuration
//
// Use NewWithConfig or ParseConfig for custom configuration:
//
//	cfg, err := domform.ParseConfig([]byte("error_class: is-invalid\n"))
//	m, err := domform.NewWithConfig(cfg)
//
// # Concurrency
//
// A Manager is driven by the host's event callbacks and is not safe for
// concurrent use.
package domform
