// Package frontend implements the server-rendered site: routing, template
// rendering, and form handling.
//
// Every handler renders through the same pipeline. A plain navigation gets
// the full document (shell plus page content) with a real status code; a
// request carrying htmx headers gets only the page content at HTTP 200,
// since htmx ignores swaps on other statuses. Fragment endpoints exist for
// targeted swaps such as appending entry rows.
package frontend
