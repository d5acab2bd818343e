package convert

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Scaffold wraps extracted content in the partial-based layout: head,
// header and container partials, a single full-width section holding the
// content, then the short footer and the closing partials. Content is
// written verbatim without escaping.
func Scaffold(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, scaffoldOpen); err != nil {
			return err
		}
		if _, err := io.WriteString(w, content); err != nil {
			return err
		}
		_, err := io.WriteString(w, scaffoldClose)
		return err
	})
}

const scaffoldOpen = `{{> head }}
                      {{> header }}
                      {{> container-open }}

                      <!-- BEGIN: MAIN CONTENT -->
                      <table
                        class="sections_container"
                        border="0"
                        width="100%"
                        cellpadding="0"
                        cellspacing="0"
                        align="center"
                        style="min-width: 100%; direction: ltr"
                        role="presentation"
                      >
                        <tr>
                          <th
                            class="section_border"
                            style="mso-line-height-rule: exactly; padding: 45px 30px"
                            bgcolor="#ffffff"
                          >
                            <table
                              border="0"
                              width="100%"
                              cellpadding="0"
                              cellspacing="0"
                              align="center"
                              style="min-width: 100%; direction: ltr"
                              role="presentation"
                            >
                              <tr>
                                <th
                                  class="section_content"
                                  style="
                                    mso-line-height-rule: exactly;
                                    direction: ltr;
                                    font-family: Verdana, sans-serif, 'Montserrat';
                                    font-size: 18px;
                                    line-height: 28px;
                                    font-weight: 400;
                                    color: #333333;
                                    padding: 8px 30px;
                                  "
                                  align="left"
                                >
`

const scaffoldClose = `
                                </th>
                              </tr>
                            </table>
                          </th>
                        </tr>
                      </table>
                      <!-- END: MAIN CONTENT -->

                      {{> container-close }}
                      {{> footer-short }}
                    </th>
                  </tr>
                </tbody>
              </table>
            </center>
          </th>
        </tr>
      </tbody>
    </table>
    <!-- END: CONTAINER -->
{{> body-close }}
`
