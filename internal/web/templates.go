package web

import (
	"html/template"
	"net/http"
)

// Minimal server-rendered views. Page HTML comes out of the content
// processor and is trusted, so it is emitted unescaped.
const templateText = `
{{define "head"}}<!doctype html>
<html><head><meta charset="utf-8"><title>{{.Site}}</title></head><body>
<nav><a href="/">Home</a> | <a href="/index/">Index</a> | <a href="/tags/">Tags</a> |
<a href="/search/">Search</a> | <a href="/create/">Create</a></nav><hr>{{end}}

{{define "foot"}}</body></html>{{end}}

{{define "page"}}{{template "head" .}}
<h1>{{.Page.Title}}</h1>
{{.Page.HTML | safe}}
<hr><p><a href="/edit/{{.Page.URL}}">Edit</a> | <a href="/move/{{.Page.URL}}">Move</a> |
<a href="/delete/{{.Page.URL}}">Delete</a></p>
{{template "foot" .}}{{end}}

{{define "index"}}{{template "head" .}}
<h1>Index</h1><ul>
{{range .Pages}}<li><a href="/{{.URL}}/">{{.Title}}</a></li>{{end}}
</ul>{{template "foot" .}}{{end}}

{{define "create"}}{{template "head" .}}
<h1>Create</h1>
<form method="post"><input name="url" placeholder="page/url"><button>Create</button></form>
{{template "foot" .}}{{end}}

{{define "editor"}}{{template "head" .}}
<h1>Editing {{.Page.URL}}</h1>
<form method="post">
<p><input name="title" value="{{.Page.Title}}" placeholder="Title"></p>
<p><input name="tags" value="{{.Page.Tags}}" placeholder="tag, another tag"></p>
<p><textarea name="body" rows="20" cols="80">{{.Page.Body}}</textarea></p>
<button>Save</button>
</form>{{template "foot" .}}{{end}}

{{define "move"}}{{template "head" .}}
<h1>Move {{.Page.URL}}</h1>
<form method="post"><input name="url" value="{{.Page.URL}}"><button>Move</button></form>
{{template "foot" .}}{{end}}

{{define "tags"}}{{template "head" .}}
<h1>Tags</h1><ul>
{{range $tag, $pages := .Tags}}<li><a href="/tag/{{$tag}}/">{{$tag}}</a> ({{len $pages}})</li>{{end}}
</ul>{{template "foot" .}}{{end}}

{{define "tag"}}{{template "head" .}}
<h1>Tag: {{.Tag}}</h1><ul>
{{range .Pages}}<li><a href="/{{.URL}}/">{{.Title}}</a></li>{{end}}
</ul>{{template "foot" .}}{{end}}

{{define "search"}}{{template "head" .}}
<h1>Search</h1>
<form method="post">
<input name="term" value="{{.Term}}">
<label><input type="checkbox" name="ignore_case" checked> ignore case</label>
<select name="option">
<option value="default">relevance</option>
<option value="CDO">created, oldest first</option>
<option value="CDN">created, newest first</option>
<option value="EDO">edited, oldest first</option>
<option value="EDN">edited, newest first</option>
</select>
<button>Search</button>
</form>
{{if .Searched}}<ul>
{{range .Results}}<li><a href="/{{.URL}}/">{{.Title}}</a></li>{{else}}<li>No results.</li>{{end}}
</ul>{{end}}
{{template "foot" .}}{{end}}

{{define "login"}}{{template "head" .}}
<h1>Login</h1>
{{if .Failed}}<p>Login failed.</p>{{end}}
<form method="post">
<p><input name="name" placeholder="username"></p>
<p><input name="password" type="password" placeholder="password"></p>
<button>Login</button>
</form>{{template "foot" .}}{{end}}
`

var templates = template.Must(
	template.New("tome").
		Funcs(template.FuncMap{
			"safe": func(s string) template.HTML { return template.HTML(s) },
		}).
		Parse(templateText))

func (s *Server) render(w http.ResponseWriter, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		s.log.Errorw("template render failed", "template", name, "error", err)
	}
}
