package html

// idleWarningDialog is the inactivity prompt plus the script that keeps it
// in sync with the server-side idle watchdog. The dialog appears only while
// the watchdog reports the warning state and hides again on any outcome.
func idleWarningDialog() string {
	return `<dialog id="idle-modal" class="modal">
  <div class="modal-box">
    <h3>Você ainda está aí?</h3>
    <p>Sua sessão será encerrada em <span id="idle-remaining">0</span>s por inatividade.</p>
    <div class="modal-action">
      <button id="idle-stay" type="button">Continuar conectado</button>
    </div>
  </div>
</dialog>
<script>
(function () {
  var modal = document.getElementById("idle-modal");
  if (!modal) return;

  function csrfToken() {
    var parts = document.cookie ? document.cookie.split(";") : [];
    for (var i = 0; i < parts.length; i++) {
      var c = parts[i].trim();
      if (c.indexOf("X-CSRF-Token=") === 0) return decodeURIComponent(c.substring(13));
    }
    return "";
  }

  function poll() {
    fetch("/tasker/api/session/idle", { credentials: "same-origin" })
      .then(function (res) {
        if (res.status === 401) { window.location.href = "/login"; return null; }
        return res.json();
      })
      .then(function (data) {
        if (!data) return;
        if (data.state === "logged-out") { window.location.href = "/login"; return; }
        if (data.state === "warning") {
          document.getElementById("idle-remaining").textContent = data.remaining;
          if (!modal.open) modal.showModal();
        } else if (modal.open) {
          modal.close();
        }
      })
      .catch(function () {});
  }

  document.getElementById("idle-stay").addEventListener("click", function () {
    fetch("/tasker/api/session/keepalive", {
      method: "POST",
      credentials: "same-origin",
      headers: { "X-CSRF-Token": csrfToken() }
    }).then(function () { if (modal.open) modal.close(); });
  });

  setInterval(poll, 1000);
})();
</script>`
}
