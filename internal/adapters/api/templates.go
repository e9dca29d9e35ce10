package api

import (
	"html/template"

	"newsletter.app/internal/core/subscription"
)

const pageLayout = `{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta http-equiv="content-type" content="text/html; charset=utf-8">
<title>{{.}}</title>
</head>
<body>
{{end}}
{{define "flashes"}}{{range .}}<p><i>{{.}}</i></p>
{{end}}{{end}}
{{define "foot"}}</body>
</html>
{{end}}`

const homePage = `{{define "home.html"}}{{template "head" "Home"}}<p>Welcome to our newsletter!</p>
<form action="/subscriptions" method="post">
<label>Name <input type="text" name="name" placeholder="Enter your name"></label>
<label>Email <input type="email" name="email" placeholder="Enter your email"></label>
<button type="submit">Subscribe</button>
</form>
<p><a href="/login">Admin login</a></p>
{{template "foot"}}{{end}}`

const loginPage = `{{define "login.html"}}{{template "head" "Login"}}{{template "flashes" .Flashes}}<form action="/login" method="post">
<label>Username <input type="text" placeholder="Enter Username" name="username"></label>
<label>Password <input type="password" placeholder="Enter Password" name="password"></label>
<button type="submit">Login</button>
</form>
{{template "foot"}}{{end}}`

const dashboardPage = `{{define "dashboard.html"}}{{template "head" "Admin dashboard"}}<p>Welcome {{.Username}}!</p>
<p>Subscribers: {{.Stats.Confirmed}} confirmed, {{.Stats.Pending}} pending.</p>
<p>Available actions:</p>
<ol>
<li><a href="/admin/password">Change password</a></li>
<li><a href="/admin/newsletter">Send a newsletter issue</a></li>
<li><form name="logoutForm" action="/admin/logout" method="post"><input type="submit" value="Logout"></form></li>
</ol>
{{template "foot"}}{{end}}`

const passwordPage = `{{define "password.html"}}{{template "head" "Change Password"}}{{template "flashes" .Flashes}}<form action="/admin/password" method="post">
<label>Current password <input type="password" placeholder="Enter current password" name="current_password"></label><br>
<label>New password <input type="password" placeholder="Enter new password" name="new_password"></label><br>
<label>Confirm new password <input type="password" placeholder="Type the new password again" name="new_password_check"></label><br>
<button type="submit">Change password</button>
</form>
<p><a href="/admin/dashboard">&lt;- Back</a></p>
{{template "foot"}}{{end}}`

const newsletterPage = `{{define "newsletter.html"}}{{template "head" "Send a newsletter issue"}}{{template "flashes" .Flashes}}<form action="/admin/newsletter" method="post">
<label>Title <input type="text" placeholder="Enter the issue title" name="title"></label><br>
<label>Plain text content <textarea placeholder="Enter the content in plain text" name="text_content" rows="20" cols="50"></textarea></label><br>
<label>HTML content <textarea placeholder="Enter the content in HTML format" name="html_content" rows="20" cols="50"></textarea></label><br>
<input hidden type="text" name="idempotency_key" value="{{.IdempotencyKey}}">
<button type="submit">Publish</button>
</form>
<p><a href="/admin/dashboard">&lt;- Back</a></p>
{{template "foot"}}{{end}}`

var pageTemplates = template.Must(template.New("pages").Parse(
	pageLayout + homePage + loginPage + dashboardPage + passwordPage + newsletterPage))

type flashPage struct {
	Flashes []string
}

type dashboardView struct {
	Username string
	Stats    subscription.Stats
}

type newsletterView struct {
	Flashes        []string
	IdempotencyKey string
}
