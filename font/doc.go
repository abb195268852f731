// The font subpackage parses font files and exposes the naming
// table information needed to identify them (name, family,
// identifier...), alongside a [Library] type to manage fonts in
// bulk when an application works with more than a couple.
package font
