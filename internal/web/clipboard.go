package web

// copyScript is the client-side copy helper embedded in the rendered page.
// copySummary(id) reads the named textarea, trims leading and trailing
// whitespace (inner line breaks are kept), writes the text to the system
// clipboard and alerts on completion. The direct clipboard API is preferred;
// the temporary-textarea technique covers platforms without it. An unknown id
// raises a visible alert rather than throwing.
const copyScript = `
var COPY_OK_MESSAGE = 'Delivery summary copied to clipboard!';
var COPY_FAIL_MESSAGE = 'Could not copy the delivery summary.';
var COPY_MISSING_MESSAGE = 'Delivery summary not found.';

function summaryClipboardText(el) {
  var text = el.value !== undefined && el.value !== null ? el.value : el.textContent;
  return String(text).trim();
}

function copySummary(id) {
  var el = document.getElementById(id);
  if (!el) {
    alert(COPY_MISSING_MESSAGE);
    return;
  }
  var text = summaryClipboardText(el);
  if (navigator.clipboard && navigator.clipboard.writeText) {
    navigator.clipboard.writeText(text).then(function () {
      alert(COPY_OK_MESSAGE);
    }, function () {
      fallbackCopy(text);
    });
    return;
  }
  fallbackCopy(text);
}

function fallbackCopy(text) {
  var helper = document.createElement('textarea');
  helper.value = text;
  document.body.appendChild(helper);
  helper.select();
  var ok = false;
  try {
    ok = document.execCommand('copy');
  } catch (err) {
    ok = false;
  }
  document.body.removeChild(helper);
  alert(ok ? COPY_OK_MESSAGE : COPY_FAIL_MESSAGE);
}
`
