package pages

import (
	"html/template"
)

const repositoryHeaderHTML = `
<div class="row rounded mx-auto mb-3 mt-5 bgOpaqueDark {{ .Class }}">
    <div class="row rounded mx-auto bgOpaqueDark">
        <div class="col-8 mx-auto">
            <h3 class="text-center text-dark mt-1">{{ .Name }}</h3>
        </div>
    </div>
</div>
`

const commitModalHTML = `
<div class="col-3 me-auto py-2">
    <button type="button" class="btn btn-sm btn-primary window-fill me-auto" data-toggle="modal" data-target="#exampleModal{{ .ID }}">
    {{ .Hash }}
    </button>

    <div class="modal" data-backdrop="false" id="exampleModal{{ .ID }}" tabindex="-1" role="dialog" aria-labelledby="exampleModalLabel" aria-hidden="true">
        <div class="modal-dialog modal-fill" role="document">
            <div class="modal-content bgOpaqueDarkModal com-{{ .ID }}">

                <div class="modal-header border-bottom border-primary" style="border: none;">
                    <h5 class="modal-title mx-auto" id="exampleModalLabel">Commit #{{ .Hash }}</h5>
                    <button type="button" class="close btn btn-info" data-dismiss="modal" aria-label="Close">
                        <span aria-hidden="true">X</span>
                    </button>
                </div>

                <div class="modal-body"><strong>Build Status:</strong> <br/><br/>{{ .Status }}</div>
                <div class="modal-footer"></div>
                <div class="modal-body"><strong>Build Files:</strong></div>
                {{- range .Files }}
                <div class="modal-body"><a href="{{ .URL }}" target="_blank">{{ .Name }}</a></div>
                {{- end }}
                <div class="modal-footer"></div>
                <div class="modal-body"><strong>Commit Date:</strong> <br/><br>{{ .Date }}</div>
                <div class="modal-footer"></div>
                <div class="modal-body"><strong>Commit Description:</strong> <br/><br>{{ .Message }}</div>
                <div class="modal-footer"></div>

            </div>
        </div>
    </div>
</div>
`

var (
	repositoryHeaderTemplate = template.Must(template.New("repository").Parse(repositoryHeaderHTML))
	commitModalTemplate      = template.Must(template.New("commit").Parse(commitModalHTML))
)

type repositoryHeader struct {
	Class string
	Name  string
}

type buildFile struct {
	Name string
	URL  string
}

type commitModal struct {
	ID      string
	Hash    string
	Status  string
	Files   []buildFile
	Date    string
	Message string
}
