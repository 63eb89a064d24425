package person

import "html/template"

var indexTemplate = template.Must(template.New("index").Parse(`<html>
    <head>
        <title>Random People</title>
        <style>
            table { border-collapse: collapse; width: 100%; }
            th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
            th { background-color: #f2f2f2; }
            img { width: 50px; height: 50px; object-fit: cover; }
        </style>
    </head>
    <body>
        <h1>Random People</h1>
        <form action="/load" method="get">
            <label for="count">Load more people:</label>
            <input type="number" id="count" name="count" min="1" max="1000">
            <button type="submit">Load</button>
        </form>
        <table>
            <thead>
                <tr>
                    <th>Gender</th>
                    <th>First Name</th>
                    <th>Last Name</th>
                    <th>Phone</th>
                    <th>Email</th>
                    <th>Location</th>
                    <th>Photo</th>
                    <th>Details</th>
                </tr>
            </thead>
            <tbody>
            {{- range .People}}
                <tr>
                    <td>{{.Gender}}</td>
                    <td>{{.FirstName}}</td>
                    <td>{{.LastName}}</td>
                    <td>{{.Phone}}</td>
                    <td>{{.Email}}</td>
                    <td>{{.Location}}</td>
                    <td><img src="{{.Picture}}" alt="Profile photo"></td>
                    <td><a href="/{{.ID}}">View details</a></td>
                </tr>
            {{- end}}
            </tbody>
        </table>
        <div>
            <a href="/?limit={{.Limit}}&offset={{.PrevOffset}}">Previous</a>
            <a href="/?limit={{.Limit}}&offset={{.NextOffset}}">Next</a>
        </div>
    </body>
</html>
`))

var loadedTemplate = template.Must(template.New("loaded").Parse(`<html>
    <head>
        <title>Loaded People</title>
        <style>
            table { border-collapse: collapse; width: 100%; }
            th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
            th { background-color: #f2f2f2; }
            img { width: 50px; height: 50px; object-fit: cover; }
        </style>
    </head>
    <body>
        <h1>Successfully loaded {{.Count}} people</h1>
        <a href="/">Back to main page</a>
        <table>
            <thead>
                <tr>
                    <th>Gender</th>
                    <th>First Name</th>
                    <th>Last Name</th>
                    <th>Phone</th>
                    <th>Email</th>
                    <th>Location</th>
                    <th>Photo</th>
                    <th>Details</th>
                </tr>
            </thead>
            <tbody>
            {{- range .People}}
                <tr>
                    <td>{{.Gender}}</td>
                    <td>{{.FirstName}}</td>
                    <td>{{.LastName}}</td>
                    <td>{{.Phone}}</td>
                    <td>{{.Email}}</td>
                    <td>{{.Location}}</td>
                    <td><img src="{{.Picture}}" alt="Profile photo"></td>
                    <td><a href="/{{.ID}}">View details</a></td>
                </tr>
            {{- end}}
            </tbody>
        </table>
    </body>
</html>
`))

var detailTemplate = template.Must(template.New("detail").Parse(`<html>
    <head>
        <title>Person Details</title>
        <style>
            table { border-collapse: collapse; width: 50%; margin: 20px auto; }
            th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
            th { background-color: #f2f2f2; width: 30%; }
            .person-header { text-align: center; font-size: 24px; margin: 20px 0; }
            .photo-cell { text-align: center; }
            .person-photo { width: 100px; height: 100px; border-radius: 50%; }
        </style>
    </head>
    <body>
        <div class="person-header">{{.FirstName}} {{.LastName}}</div>
        <table>
            <tr>
                <th>Gender</th>
                <td>{{.Gender}}</td>
            </tr>
            <tr>
                <th>Phone</th>
                <td>{{.Phone}}</td>
            </tr>
            <tr>
                <th>Email</th>
                <td>{{.Email}}</td>
            </tr>
            <tr>
                <th>Location</th>
                <td>{{.Location}}</td>
            </tr>
            <tr>
                <th>Photo</th>
                <td class="photo-cell">
                    <img src="{{.Picture}}" alt="Profile photo" class="person-photo">
                </td>
            </tr>
        </table>
        <div style="text-align: center; margin-top: 20px;">
            <a href="/">Back to main page</a>
        </div>
    </body>
</html>
`))
